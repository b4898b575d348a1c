package dto

import "marketplace-backend/internal/model"

// ProductDetail is the enriched read projection: the stored product plus
// its enabled payment-method ids resolved against the static catalog.
// The embedded seller snapshot is already public-safe.
type ProductDetail struct {
	model.Product
	PaymentMethods []model.PaymentMethod `json:"paymentMethods"`
}
