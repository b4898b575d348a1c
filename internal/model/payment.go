package model

// PaymentMethod is one entry of the static in-process catalog. The
// catalog is configuration, never persisted or mutated at runtime.
type PaymentMethod struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	MaxInstallments int    `json:"maxInstallments,omitempty"`
	Description     string `json:"description,omitempty"`
}
