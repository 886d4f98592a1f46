package entity

import "time"

// Tipos de insight. El tipo lo asigna el pipeline según la categoría de análisis,
// nunca el modelo de lenguaje.
const (
	InsightTypeAlert       = "alert"
	InsightTypeOpportunity = "opportunity"
	InsightTypeTip         = "tip"
	InsightTypeAchievement = "achievement"
)

// Categorías de insight (una por analizador del pipeline).
const (
	InsightCategorySales     = "sales"
	InsightCategoryCustomers = "customers"
	InsightCategoryInventory = "inventory"
	InsightCategoryFinance   = "finance"
)

// Prioridades válidas. El normalizador colapsa cualquier valor no reconocido
// (incluido "low") a medium; solo high y critical sobreviven tal cual.
const (
	InsightPriorityLow      = "low"
	InsightPriorityMedium   = "medium"
	InsightPriorityHigh     = "high"
	InsightPriorityCritical = "critical"
)

// PulseInsight es una recomendación de negocio generada por el pipeline de IA.
// El pipeline crea los registros; la UI los marca leídos o descartados. Nunca se
// actualizan los campos de contenido después de creados.
type PulseInsight struct {
	ID          string
	CompanyID   string
	Title       string
	Message     string
	Type        string // alert, opportunity, tip, achievement
	Category    string // sales, customers, inventory, finance
	Priority    string // low, medium, high, critical
	ActionLabel string // opcional
	InsightDate time.Time // solo fecha, sin hora: todos los insights de una corrida comparten fecha
	IsRead      bool
	IsDismissed bool
	CreatedAt   time.Time
}
