package model

import "github.com/golang-jwt/jwt/v5"

type TokenResponse struct {
	EmployeeID   string `json:"employeeId"`
	RefreshToken string `json:"refreshToken"`
	CreatedAt    int64  `json:"createdAt"` // creation time in seconds
	Revoked      bool   `json:"revoked"`
	ExpiresIn    int64  `json:"expiresIn"` // expiration in seconds
}

type AccessClaims struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department"`
	Role         string `json:"role,omitempty"`
	TokenID      string `json:"tokenId,omitempty"` // for refresh token tracking
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	EmployeeID string `json:"employeeId"`
	TokenID    string `json:"tokenId,omitempty"`
	jwt.RegisteredClaims
}
