package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for application accounts
type UserClaims struct {
	UserID  string `json:"userId"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role"`
	GroupID string `json:"groupId,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
