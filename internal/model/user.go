package model

import "time"

// UserIDPrefix tags generated user ids (prefix plus zero-padded sequence).
const UserIDPrefix = "SELLER"

// User is the persisted account record. Password holds the bcrypt hash,
// never the plaintext; projections for API responses live in the user dtos.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Name       string    `json:"name"`
	Reputation float64   `json:"reputation"`
	Location   string    `json:"location"`
	SalesCount int       `json:"salesCount"`
	JoinDate   time.Time `json:"joinDate"`
	IsVerified bool      `json:"isVerified"`
	// IsActive is a soft-delete flag; inactive users are excluded from
	// every lookup.
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) EntityID() string { return u.ID }

// SellerSnapshot projects the user down to the public subset embedded in
// products at write time.
func (u User) SellerSnapshot() Seller {
	return Seller{
		ID:         u.ID,
		Name:       u.Name,
		Reputation: u.Reputation,
		Location:   u.Location,
		SalesCount: u.SalesCount,
		JoinDate:   u.JoinDate,
		IsVerified: u.IsVerified,
	}
}
