package dto

// CompanyRequest campos editables de una empresa.
type CompanyRequest struct {
	Name          string `json:"name" validate:"required"`
	GSTNumber     string `json:"gst_number"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required"`
	PlaceOfSupply string `json:"place_of_supply"`
	Address       string `json:"address" validate:"required"`
	State         string `json:"state" validate:"required"`
}

// UpdateCompanyRequest sobrescritura completa por id.
type UpdateCompanyRequest struct {
	ID string `json:"id" validate:"required"`
	CompanyRequest
}

// SelectCompanyRequest cambio de empresa activa por nombre.
type SelectCompanyRequest struct {
	CompanyName string `json:"company_name"`
}

// CompanyImport fila de importación: incluye el flag de selección explícito.
type CompanyImport struct {
	CompanyRequest
	SelectedCompany YesNo `json:"selected_company"`
}

// ImportCompanyRequest cuerpo de import-company.
type ImportCompanyRequest struct {
	Input CompanyImport `json:"input" validate:"required"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID              string `json:"_id"`
	Name            string `json:"name"`
	GSTNumber       string `json:"gst_number"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	PlaceOfSupply   string `json:"place_of_supply"`
	Address         string `json:"address"`
	State           string `json:"state"`
	SelectedCompany YesNo  `json:"selected_company"`
	User            string `json:"user"`
}

// CompanyReportRow empresa etiquetada para reportes y exportación.
type CompanyReportRow struct {
	CompanyResponse
	TypeName string `json:"__typename"`
}
