package dto

import (
	"time"

	"onboard_panel/model"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool             `json:"success"`
	Token   string           `json:"token,omitempty"`
	User    *model.AdminUser `json:"user,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// CreateAdminDTO provisions a company admin from the superuser dashboard.
type CreateAdminDTO struct {
	Email             string     `json:"email"`
	Password          string     `json:"password"`
	CompanyID         string     `json:"companyId"`
	SubscriptionStart *time.Time `json:"subscriptionStart"`
	SubscriptionEnd   *time.Time `json:"subscriptionEnd"`
}
