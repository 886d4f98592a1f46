package entity

import "time"

// Company representa el negocio (tenant). Todos los registros de la aplicación
// cuelgan de una Company vía CompanyID.
type Company struct {
	ID           string
	Name         string
	BusinessType string // retail, food, services, other
	Email        string
	Phone        string
	Currency     string // ISO 4217, ej. "USD"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
