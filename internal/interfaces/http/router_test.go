package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/auth"
	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/tenant"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/facturacion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/facturacion-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/facturacion-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "facturacion-test"
	testExpMin    = 60
)

type testApp struct {
	app   *fiber.App
	store *memory.Store
	auth  *auth.AuthUseCase
}

// buildTestApp construye la API completa sobre el almacén en memoria, sin correo ni caché.
func buildTestApp(t *testing.T) *testApp {
	t.Helper()
	store := memory.NewStore()
	scope := tenant.NewScope(store, nil, nil)
	authUC := auth.NewAuthUseCase(store.Users(), nil, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	}, auth.Links{}, nil)
	invoiceUC := billing.NewInvoiceUseCase(scope, store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  usecase.NewCompanyUseCase(scope, store),
		ItemUC:     usecase.NewItemUseCase(scope),
		CustomerUC: billing.NewCustomerUseCase(scope),
		InvoiceUC:  invoiceUC,
		DocumentUC: billing.NewDocumentUseCase(invoiceUC, infrapdf.NewMarotoPDFGenerator(), xmlexport.NewRenderer()),
		ReportUC:   analytics.NewReportUseCase(scope),
		Metrics:    apphttp.NewMetrics("facturacion"),
		JWTSecret:  testJWTSecret,
		AppName:    "facturacion-test",
	})
	return &testApp{app: app, store: store, auth: authUC}
}

// withUser crea el usuario de prueba verificado y devuelve su token.
func (a *testApp) withUser(t *testing.T) string {
	t.Helper()
	require.NoError(t, a.store.Users().Create(context.Background(), &entity.User{
		ID: testUserID, Username: "ana", Email: "ana@example.com", Verified: true,
	}))
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana@example.com", testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// do lanza la petición; body se serializa a JSON si no es nil.
func (a *testApp) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func messageOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	return body.Message
}

func company(name string) fiber.Map {
	return fiber.Map{"name": name, "gst_number": "GST-" + name, "phone": "555", "email": "info@example.com",
		"place_of_supply": "KA", "address": "Main St", "state": "KA"}
}

func (a *testApp) createCompany(t *testing.T, token, name string) map[string]any {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/company/create-company", token, company(name))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out map[string]any
	decode(t, resp, &out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health e identidad
// ──────────────────────────────────────────────────────────────────────────────

func TestRootAndHealth(t *testing.T) {
	a := buildTestApp(t)

	resp := a.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Working", string(raw))

	resp = a.do(t, http.MethodGet, "/health", "", nil)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "facturacion-test", body["service"])
}

func TestIdentity_MissingOrInvalidToken(t *testing.T) {
	a := buildTestApp(t)

	resp := a.do(t, http.MethodGet, "/company/get-companies", "", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "jwt must be provided", messageOf(t, resp))

	resp = a.do(t, http.MethodGet, "/company/get-companies", "no-es-un-jwt", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	other, err := pkgjwt.Generate("otro-secreto", testUserID, "ana@example.com", testIssuer, testExpMin)
	require.NoError(t, err)
	resp = a.do(t, http.MethodGet, "/company/get-companies", other, nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestIdentity_TokenSources(t *testing.T) {
	a := buildTestApp(t)
	tok := a.withUser(t)

	// Query string.
	resp := a.do(t, http.MethodGet, "/company/get-companies?token="+tok, "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Campo token del body.
	body := company("Acme")
	body["token"] = tok
	resp = a.do(t, http.MethodPost, "/company/create-company", "", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthFlow_SelectsNewestCompany(t *testing.T) {
	a := buildTestApp(t)
	ctx := context.Background()

	reg := fiber.Map{"username": "ana", "email": "ana@example.com", "password": "secreto"}
	resp := a.do(t, http.MethodPost, "/auth/register", "", reg)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Sent email verification OTP successfully", messageOf(t, resp))

	resp = a.do(t, http.MethodPost, "/auth/register", "", reg)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = a.do(t, http.MethodPost, "/auth/login", "", fiber.Map{"email": "ana@example.com", "password": "secreto"})
	assert.Equal(t, "User Email not verified", messageOf(t, resp))

	resp = a.do(t, http.MethodPost, "/auth/verify-email", "", fiber.Map{"otp": "nope"})
	assert.Equal(t, "Invalid or expired OTP", messageOf(t, resp))

	user, err := a.store.Users().GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	resp = a.do(t, http.MethodPost, "/auth/verify-email", "", fiber.Map{"otp": user.VerifyOTP})
	assert.Equal(t, "User verified successfully!", messageOf(t, resp))

	resp = a.do(t, http.MethodPost, "/auth/login", "", fiber.Map{"email": "ana@example.com", "password": "mal"})
	assert.Equal(t, "Invalid credentials", messageOf(t, resp))

	resp = a.do(t, http.MethodPost, "/auth/login", "", fiber.Map{"email": "ana@example.com", "password": "secreto"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)

	a.createCompany(t, login.Token, "Acme")
	a.createCompany(t, login.Token, "Beta")

	resp = a.do(t, http.MethodGet, "/company/get-selected-company", login.Token, nil)
	var selected map[string]any
	decode(t, resp, &selected)
	assert.Equal(t, "Beta", selected["name"])
	assert.Equal(t, "Y", selected["selected_company"])

	resp = a.do(t, http.MethodGet, "/company/get-company-existing-flag", login.Token, nil)
	var flag map[string]string
	decode(t, resp, &flag)
	assert.Equal(t, "Y", flag["company_existing"])

	resp = a.do(t, http.MethodGet, "/auth/get-user", login.Token, nil)
	var me map[string]any
	decode(t, resp, &me)
	assert.Equal(t, "ana", me["username"])
	assert.NotContains(t, me, "password")
	a.auth.Wait()
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas, ítems y clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCompany_ConflictAndRemoveGuards(t *testing.T) {
	a := buildTestApp(t)
	tok := a.withUser(t)
	acme := a.createCompany(t, tok, "Acme")

	resp := a.do(t, http.MethodPost, "/company/create-company", tok, company("Acme"))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Company already exists!", messageOf(t, resp))

	resp = a.do(t, http.MethodPost, "/item/add-item", tok, fiber.Map{
		"item_name": "Widget", "item_code": "W1", "item_details": "d", "hsn_sac": "9983", "qty": 1, "rate": 10,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = a.do(t, http.MethodDelete, "/company/remove-company?id="+acme["_id"].(string), tok, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Please first delete items related to company!", messageOf(t, resp))

	resp = a.do(t, http.MethodDelete, "/company/remove-company?id=missing", tok, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodPut, "/company/update-company", tok, fiber.Map{
		"id": "missing", "name": "X", "phone": "1", "email": "x@example.com", "address": "a", "state": "s",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestItem_AddTwiceIsConflict(t *testing.T) {
	a := buildTestApp(t)
	tok := a.withUser(t)
	widget := fiber.Map{"item_name": "Widget", "item_code": "W1", "item_details": "d", "hsn_sac": "9983", "qty": 1, "rate": 10}

	resp := a.do(t, http.MethodPost, "/item/add-item", tok, widget)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Company not found", messageOf(t, resp))

	a.createCompany(t, tok, "Acme")
	resp = a.do(t, http.MethodPost, "/item/add-item", tok, widget)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = a.do(t, http.MethodPost, "/item/add-item", tok, widget)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Item already exists!", messageOf(t, resp))

	resp = a.do(t, http.MethodGet, "/item/get-items", tok, nil)
	var items []map[string]any
	decode(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "10", fmt.Sprint(items[0]["rate"]))
}

func TestCustomer_ValidationIsInternalError(t *testing.T) {
	a := buildTestApp(t)
	tok := a.withUser(t)
	a.createCompany(t, tok, "Acme")

	resp := a.do(t, http.MethodPost, "/customer/add-customer", tok, fiber.Map{"name": "Bob"})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoice_BatchAndDocuments(t *testing.T) {
	a := buildTestApp(t)
	tok := a.withUser(t)
	a.createCompany(t, tok, "Acme")

	resp := a.do(t, http.MethodPost, "/customer/add-customer", tok, fiber.Map{
		"name": "Bob", "email": "bob@example.com", "phone": "777", "customer_company": "BobCo", "state": "KA", "address": "Elm",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var bob map[string]any
	decode(t, resp, &bob)

	ids := make([]string, 0, 2)
	for _, name := range []string{"Widget", "Gadget"} {
		resp = a.do(t, http.MethodPost, "/item/add-item", tok, fiber.Map{
			"item_name": name, "item_code": name, "item_details": "d", "hsn_sac": "9983", "qty": 5, "rate": 100,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var it map[string]any
		decode(t, resp, &it)
		ids = append(ids, it["_id"].(string))
	}

	row := func(number, itemID string) fiber.Map {
		return fiber.Map{"invoice_number": number, "due_date": "2024-06-01", "customer_id": bob["_id"], "item_id": itemID,
			"qty": 1, "discount": 0, "gst": 18, "amount": 100, "total_amount": 118}
	}
	resp = a.do(t, http.MethodPost, "/invoice/create-invoice", tok, fiber.Map{
		"inputs": []fiber.Map{row("INV-1", ids[0]), row("INV-1", ids[1])},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var created []map[string]any
	decode(t, resp, &created)
	require.Len(t, created, 2)
	assert.Equal(t, "2024-06-01T00:00:00.000Z", created[0]["due_date"])

	resp = a.do(t, http.MethodPost, "/invoice/create-invoice", tok, fiber.Map{"inputs": []fiber.Map{row("INV-1", ids[0])}})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Invoice already exists!", messageOf(t, resp))

	resp = a.do(t, http.MethodGet, "/invoice/get-invoice?invoice_number=INV-1", tok, nil)
	var rows []map[string]any
	decode(t, resp, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bob", rows[0]["customer"].(map[string]any)["name"])

	resp = a.do(t, http.MethodGet, "/invoice/get-invoice-pdf?invoice_number=INV-1", tok, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "invoice_INV-1.pdf")
	pdf, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	resp = a.do(t, http.MethodGet, "/invoice/get-invoice-xml?invoice_number=INV-1", tok, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	xml, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(xml), `<Invoice number="INV-1">`))

	resp = a.do(t, http.MethodGet, "/invoice/get-invoice-pdf?invoice_number=INV-404", tok, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Invoice not found", messageOf(t, resp))

	resp = a.do(t, http.MethodDelete, "/invoice/remove-invoice?invoice_number=INV-1", tok, nil)
	assert.Equal(t, "Invoices removed successfully", messageOf(t, resp))

	resp = a.do(t, http.MethodGet, "/invoice/get-invoice-by-company", tok, nil)
	var list []map[string]any
	decode(t, resp, &list)
	assert.Empty(t, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes y métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestReports(t *testing.T) {
	a := buildTestApp(t)
	tok := a.withUser(t)

	resp := a.do(t, http.MethodGet, "/invoice/get-invoices-report", tok, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Companies not found", messageOf(t, resp))

	resp = a.do(t, http.MethodGet, "/customer/get-customers-report", tok, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Companies not found", messageOf(t, resp))

	acme := a.createCompany(t, tok, "Acme")

	// companyId explícito no requiere token.
	resp = a.do(t, http.MethodGet, "/company/get-companies-report?companyId="+acme["_id"].(string), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rows []map[string]any
	decode(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Company", rows[0]["__typename"])

	// Un id con formato inválido se trata como inexistente.
	resp = a.do(t, http.MethodGet, "/company/get-companies-report?companyId=not-a-uuid", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows = nil
	decode(t, resp, &rows)
	assert.Empty(t, rows)

	resp = a.do(t, http.MethodGet, "/company/get-companies-report", "", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestCompaniesNotFoundStatusPerEndpoint(t *testing.T) {
	a := buildTestApp(t)
	tok := a.withUser(t)

	cases := []struct {
		path   string
		status int
	}{
		{"/customer/get-all-customers", fiber.StatusNotFound},
		{"/customer/get-customers-report", fiber.StatusOK},
		{"/customer/get-customers-export", fiber.StatusOK},
		{"/item/get-all-items", fiber.StatusNotFound},
		{"/item/get-items-report", fiber.StatusOK},
		{"/item/get-items-export", fiber.StatusNotFound},
		{"/invoice/get-invoices-report", fiber.StatusNotFound},
		{"/invoice/get-invoices-export", fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp := a.do(t, http.MethodGet, tc.path, tok, nil)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, "Companies not found", messageOf(t, resp))
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	a := buildTestApp(t)
	a.do(t, http.MethodGet, "/health", "", nil)

	resp := a.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "facturacion_http_requests_total")
}
