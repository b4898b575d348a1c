package dto

import (
	"time"

	"marketplace-backend/internal/model"
)

// PublicUser is the account record without credentials.
type PublicUser struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Reputation float64   `json:"reputation"`
	Location   string    `json:"location"`
	SalesCount int       `json:"salesCount"`
	JoinDate   time.Time `json:"joinDate"`
	IsVerified bool      `json:"isVerified"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SellerInfo is the public seller projection exposed to buyers; it also
// excludes the email.
type SellerInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Reputation float64   `json:"reputation"`
	Location   string    `json:"location"`
	SalesCount int       `json:"salesCount"`
	JoinDate   time.Time `json:"joinDate"`
	IsVerified bool      `json:"isVerified"`
}

// AuthResult is the register/login response payload.
type AuthResult struct {
	User        PublicUser `json:"user"`
	AccessToken string     `json:"access_token"`
}

func PublicUserFrom(u *model.User) PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Reputation: u.Reputation,
		Location:   u.Location,
		SalesCount: u.SalesCount,
		JoinDate:   u.JoinDate,
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func SellerInfoFrom(u *model.User) SellerInfo {
	return SellerInfo{
		ID:         u.ID,
		Name:       u.Name,
		Reputation: u.Reputation,
		Location:   u.Location,
		SalesCount: u.SalesCount,
		JoinDate:   u.JoinDate,
		IsVerified: u.IsVerified,
	}
}
