package dto

import (
	"github.com/melisdmr/brightnest/internal/app/models"
)

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jordan@brightnest.app"`
	Password  string `json:"password" binding:"required,min=8" example:"hunter2hunter2"`
	FirstName string `json:"firstName" binding:"required,min=2,max=100" example:"Jordan"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100" example:"Avery"`
	RoleType  string `json:"roleType" binding:"required,oneof=PARENT STAFF DIRECTOR" example:"PARENT"`
	Phone     string `json:"phone,omitempty" example:"+15550101"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries a freshly issued token pair
type TokenResponse struct {
	AccessToken      string       `json:"accessToken"`
	RefreshToken     string       `json:"refreshToken"`
	ExpiresIn        int          `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int          `json:"refreshExpiresIn" example:"2592000"`
	User             UserResponse `json:"user"`
}

// UserResponse represents account information in API responses
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"jordan@brightnest.app"`
	FirstName string `json:"firstName" example:"Jordan"`
	LastName  string `json:"lastName" example:"Avery"`
	RoleType  string `json:"roleType" example:"STAFF" enums:"PARENT,STAFF,DIRECTOR"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"isActive"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RoleType:  string(user.RoleType),
		Phone:     user.Phone,
		IsActive:  user.IsActive,
	}
}
