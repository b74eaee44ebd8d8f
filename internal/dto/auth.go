package dto

import (
	"time"

	"temple-admin/internal/models"
)

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse contains the issued access token
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        *models.User `json:"user"`
}

// CreateUserRequest creates a console user. Only super admins may call it.
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=10,max=72"`
	FullName    string  `json:"fullName" validate:"required,min=1,max=200"`
	Role        string  `json:"role" validate:"required,user_role"`
	CommunityID *string `json:"communityId" validate:"omitempty,uuid"`
}
