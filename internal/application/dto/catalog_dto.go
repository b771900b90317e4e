package dto

import "github.com/shopspring/decimal"

// ── Customers ────────────────────────────────────────────────────────────────

// CustomerRequest campos editables de un cliente.
type CustomerRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	CustomerCompany string `json:"customer_company" validate:"required"`
	GSTIN           string `json:"gstin"`
	State           string `json:"state" validate:"required"`
	Address         string `json:"address" validate:"required"`
}

// UpdateCustomerRequest sobrescritura completa por id.
type UpdateCustomerRequest struct {
	ID string `json:"id" validate:"required"`
	CustomerRequest
}

// CustomerImport fila de importación; la empresa se resuelve por nombre.
type CustomerImport struct {
	CustomerRequest
	CompanyName string `json:"companyName"`
}

// ImportCustomerRequest cuerpo de import-customer.
type ImportCustomerRequest struct {
	Input CustomerImport `json:"input" validate:"required"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID              string `json:"_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CustomerCompany string `json:"customer_company"`
	GSTIN           string `json:"gstin"`
	State           string `json:"state"`
	Address         string `json:"address"`
	Company         string `json:"company"`
}

// CustomerReportRow cliente con el nombre de su empresa.
type CustomerReportRow struct {
	CustomerResponse
	CompanyName string `json:"companyName"`
	TypeName    string `json:"__typename"`
}

// ── Items ────────────────────────────────────────────────────────────────────

// ItemRequest campos editables de un ítem.
type ItemRequest struct {
	ItemName    string          `json:"item_name" validate:"required"`
	ItemCode    string          `json:"item_code" validate:"required"`
	ItemDetails string          `json:"item_details" validate:"required"`
	HSNSAC      string          `json:"hsn_sac" validate:"required"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
}

// UpdateItemRequest sobrescritura completa por id.
type UpdateItemRequest struct {
	ID string `json:"id" validate:"required"`
	ItemRequest
}

// ItemImport fila de importación; la empresa se resuelve por nombre.
type ItemImport struct {
	ItemRequest
	CompanyName string `json:"companyName"`
}

// ImportItemRequest cuerpo de import-item.
type ImportItemRequest struct {
	Input ItemImport `json:"input" validate:"required"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID          string          `json:"_id"`
	ItemName    string          `json:"item_name"`
	ItemCode    string          `json:"item_code"`
	ItemDetails string          `json:"item_details"`
	HSNSAC      string          `json:"hsn_sac"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	Company     string          `json:"company"`
}

// ItemReportRow ítem con el nombre de su empresa.
type ItemReportRow struct {
	ItemResponse
	CompanyName string `json:"companyName"`
	TypeName    string `json:"__typename"`
}
