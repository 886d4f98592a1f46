package dto

import "time"

// CreateCompanyRequest payload de POST /api/companies (onboarding del negocio).
type CreateCompanyRequest struct {
	Name         string `json:"name"`
	BusinessType string `json:"business_type"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Currency     string `json:"currency"`
}

// UpdateCompanyRequest payload de PUT /api/companies/:id (Settings).
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	BusinessType *string `json:"business_type"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Currency     *string `json:"currency"`
}

// CompanyResponse representación API del negocio.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessType string    `json:"business_type,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
}
