package dto

import "github.com/jhoicas/facturacion-api/internal/domain/entity"

// FromUser convierte la entidad a su salida pública.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Verified:        YesNo(u.Verified),
		CompanyExisting: YesNo(u.CompanyExisting),
	}
}

// FromCompany convierte la entidad a su salida.
func FromCompany(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		GSTNumber:       c.GSTNumber,
		Phone:           c.Phone,
		Email:           c.Email,
		PlaceOfSupply:   c.PlaceOfSupply,
		Address:         c.Address,
		State:           c.State,
		SelectedCompany: YesNo(c.Selected),
		User:            c.UserID,
	}
}

// FromCustomer convierte la entidad a su salida.
func FromCustomer(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		CustomerCompany: c.CustomerCompany,
		GSTIN:           c.GSTIN,
		State:           c.State,
		Address:         c.Address,
		Company:         c.CompanyID,
	}
}

// FromItem convierte la entidad a su salida.
func FromItem(it *entity.Item) *ItemResponse {
	if it == nil {
		return nil
	}
	return &ItemResponse{
		ID:          it.ID,
		ItemName:    it.Name,
		ItemCode:    it.Code,
		ItemDetails: it.Details,
		HSNSAC:      it.HSNSAC,
		Qty:         it.Qty,
		Rate:        it.Rate,
		Company:     it.CompanyID,
	}
}

// FromInvoice convierte la fila a su salida con referencias por id.
func FromInvoice(inv *entity.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		InvoiceAmounts: InvoiceAmounts{
			Qty:         inv.Qty,
			Discount:    inv.Discount,
			GST:         inv.GST,
			Amount:      inv.Amount,
			TotalAmount: inv.TotalAmount,
		},
		Company:  inv.CompanyID,
		Customer: inv.CustomerID,
		Item:     inv.ItemID,
	}
}
