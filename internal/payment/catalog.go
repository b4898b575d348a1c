// Package payment holds the static payment-method catalog. It is
// read-only configuration loaded at process start.
package payment

import "marketplace-backend/internal/model"

var methods = []model.PaymentMethod{
	{
		ID:              "mercadopago",
		Name:            "MercadoPago",
		Icon:            "/uploads/icons/mercadopago.svg",
		MaxInstallments: 12,
		Description:     "Paga con tu cuenta de MercadoPago",
	},
	{
		ID:              "visa_credit",
		Name:            "Tarjeta de crédito Visa",
		Icon:            "/uploads/icons/visa_credit.svg",
		MaxInstallments: 6,
		Description:     "Visa",
	},
	{
		ID:              "visa_debit",
		Name:            "Tarjeta de débito Visa",
		Icon:            "/uploads/icons/visa_debit.svg",
		MaxInstallments: 1,
		Description:     "Pago inmediato desde tu cuenta",
	},
	{
		ID:              "mastercard_credit",
		Name:            "Tarjeta de crédito Mastercard",
		Icon:            "/uploads/icons/master_credit.svg",
		MaxInstallments: 6,
		Description:     "Mastercard",
	},
	{
		ID:              "mastercard_debit",
		Name:            "Tarjeta de débito Mastercard",
		Icon:            "/uploads/icons/master_debit.svg",
		MaxInstallments: 1,
		Description:     "Pago inmediato desde tu cuenta",
	},
	{
		ID:              "pagofacil",
		Name:            "Pago Facil",
		Icon:            "/uploads/icons/pagofacil.svg",
		MaxInstallments: 1,
		Description:     "Pagá en efectivo al retirar",
	},
}

var byID = func() map[string]model.PaymentMethod {
	m := make(map[string]model.PaymentMethod, len(methods))
	for _, pm := range methods {
		m[pm.ID] = pm
	}
	return m
}()

// Methods returns a copy of the full catalog.
func Methods() []model.PaymentMethod {
	out := make([]model.PaymentMethod, len(methods))
	copy(out, methods)
	return out
}

// IsKnown reports whether the id belongs to the catalog.
func IsKnown(id string) bool {
	_, ok := byID[id]
	return ok
}

// Resolve maps enabled ids to their catalog records in catalog order.
// Unknown ids are dropped silently.
func Resolve(ids []string) []model.PaymentMethod {
	enabled := make(map[string]bool, len(ids))
	for _, id := range ids {
		enabled[id] = true
	}
	out := []model.PaymentMethod{}
	for _, pm := range methods {
		if enabled[pm.ID] {
			out = append(out, pm)
		}
	}
	return out
}
