package model

import (
	"strings"
	"time"
)

// ProductIDPrefix tags every generated product id; the remainder is nine
// decimal digits. Consumers treat the whole id as opaque apart from the
// prefix check used to tell ids from slugs.
const ProductIDPrefix = "MLA"

// Product condition values accepted on creation.
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

// Warranty carries both fields or is absent entirely.
type Warranty struct {
	Status bool   `json:"status"`
	Value  string `json:"value"`
}

type ColorOption struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Seller is the public snapshot of the owning user embedded into a
// product at write time. It is denormalized on purpose: later changes to
// the user do not rewrite already-stored products.
type Seller struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Reputation float64   `json:"reputation"`
	Location   string    `json:"location"`
	SalesCount int       `json:"salesCount"`
	JoinDate   time.Time `json:"joinDate"`
	IsVerified bool      `json:"isVerified"`
}

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	MainImage   string   `json:"mainImage"`
	Stock       int      `json:"stock"`
	Condition   string   `json:"condition"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`

	Seller Seller `json:"seller"`

	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`

	EnabledPaymentMethods []string `json:"enabledPaymentMethods"`

	FreeShipping    bool          `json:"freeShipping"`
	Warranty        *Warranty     `json:"warranty,omitempty"`
	Features        []string      `json:"features,omitempty"`
	AvailableColors []ColorOption `json:"availableColors,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p Product) EntityID() string { return p.ID }

// LooksLikeProductID reports whether an identifier has the generated id
// shape (prefix plus nine digits) as opposed to a slug. Used only to pick
// the cache lookup path; a false negative just means a repository scan.
func LooksLikeProductID(identifier string) bool {
	if !strings.HasPrefix(identifier, ProductIDPrefix) {
		return false
	}
	rest := identifier[len(ProductIDPrefix):]
	if len(rest) != 9 {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
