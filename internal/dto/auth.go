package dto

import "time"

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterChurchRequest signs up a brand new church together with its first
// admin account. The admin comes out APPROVED and the church ACTIVE.
type RegisterChurchRequest struct {
	ChurchName string `json:"churchName" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

// JoinChurchRequest registers a worker against an existing church via its
// join link. The account starts PENDING until a church admin approves it.
type JoinChurchRequest struct {
	ChurchID string `json:"churchId" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	UnitID   string `json:"unitId"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      UserResponse    `json:"user"`
	Church    *ChurchResponse `json:"church,omitempty"`
}

// ExchangeCodeRequest carries the authorization code from the Google OAuth
// redirect.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
