package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/auth"
	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	ItemUC     *usecase.ItemUseCase
	CustomerUC *billing.CustomerUseCase
	InvoiceUC  *billing.InvoiceUseCase
	DocumentUC *billing.DocumentUseCase
	ReportUC   *analytics.ReportUseCase
	Metrics    *Metrics
	JWTSecret  string
	AppName    string
}

// Router registra las rutas de la API. Las rutas no llevan prefijo /api.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	health := NewHealthHandler(deps.AppName)
	app.Get("/", health.Root)
	app.Get("/health", health.Health)

	// Identidad: no bloquea, cada endpoint decide si necesita el usuario.
	app.Use(Identity(deps.JWTSecret))

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify-email", authHandler.VerifyEmail)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/get-user", authHandler.GetUser)
	authGroup.Get("/get-users", authHandler.GetUsers)

	// Companies
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.ReportUC)
	companies := app.Group("/company")
	companies.Get("/get-company-existing-flag", companyHandler.ExistingFlag)
	companies.Post("/create-company", companyHandler.Create)
	companies.Get("/get-companies", companyHandler.List)
	companies.Get("/get-selected-company", companyHandler.GetSelected)
	companies.Post("/update-selected-company", companyHandler.Select)
	companies.Put("/update-company", companyHandler.Update)
	companies.Delete("/remove-company", companyHandler.Remove)
	companies.Get("/get-companies-report", companyHandler.Report)
	companies.Get("/get-companies-export", companyHandler.Export)
	companies.Post("/import-company", companyHandler.Import)

	// Customers
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ReportUC)
	customers := app.Group("/customer")
	customers.Get("/get-customers", customerHandler.List)
	customers.Get("/get-all-customers", customerHandler.ListAll)
	customers.Post("/add-customer", customerHandler.Add)
	customers.Put("/update-customer", customerHandler.Update)
	customers.Delete("/remove-customer", customerHandler.Remove)
	customers.Get("/get-customers-report", customerHandler.Report)
	customers.Get("/get-customers-export", customerHandler.Export)
	customers.Post("/import-customer", customerHandler.Import)

	// Items
	itemHandler := NewItemHandler(deps.ItemUC, deps.ReportUC)
	items := app.Group("/item")
	items.Get("/get-items", itemHandler.List)
	items.Get("/get-all-items", itemHandler.ListAll)
	items.Post("/add-item", itemHandler.Add)
	items.Put("/update-item", itemHandler.Update)
	items.Delete("/remove-item", itemHandler.Remove)
	items.Get("/get-items-report", itemHandler.Report)
	items.Get("/get-items-export", itemHandler.Export)
	items.Post("/import-item", itemHandler.Import)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC, deps.ReportUC)
	invoices := app.Group("/invoice")
	invoices.Post("/create-invoice", invoiceHandler.Create)
	invoices.Get("/get-invoice-by-company", invoiceHandler.ListByCompany)
	invoices.Delete("/remove-invoice", invoiceHandler.Remove)
	invoices.Get("/get-invoice", invoiceHandler.Get)
	invoices.Get("/get-invoice-pdf", invoiceHandler.PDF)
	invoices.Get("/get-invoice-xml", invoiceHandler.XML)
	invoices.Get("/get-invoices-report", invoiceHandler.Report)
	invoices.Get("/get-invoices-export", invoiceHandler.Export)
	invoices.Post("/import-invoice", invoiceHandler.Import)
}
