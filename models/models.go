package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents a dashboard account (merchant or admin).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Core Models ---

// ProductSignal is the raw stock/sales snapshot for one product, as supplied
// by the catalog source. Immutable input to the engine for one invocation.
type ProductSignal struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Stock        int        `json:"stock"`
	DailySales   float64    `json:"daily_sales"`
	WeeklySales  float64    `json:"weekly_sales"`
	MonthlySales float64    `json:"monthly_sales"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSoldDate *time.Time `json:"last_sold_date,omitempty"`
	Price        float64    `json:"price"`
	Category     *string    `json:"category,omitempty"`
}

// Forecast statuses.
const (
	ForecastCritical = "critical"
	ForecastWarning  = "warning"
	ForecastSafe     = "safe"
	ForecastUnknown  = "unknown"
)

// ForecastAssessment projects when a product runs out of stock.
// DaysUntilStockout is nil exactly when Status is "unknown".
type ForecastAssessment struct {
	DaysUntilStockout *int   `json:"days_until_stockout"`
	Status            string `json:"status"`
}

// Staleness tiers. The threshold-relative policy uses fresh/aging/stale/critical,
// the fixed-cutpoint policy uses fresh/attention/warning/critical.
const (
	TierFresh     = "fresh"
	TierAging     = "aging"
	TierStale     = "stale"
	TierAttention = "attention"
	TierWarning   = "warning"
	TierCritical  = "critical"
)

// StalenessAssessment describes how long a product has sat without selling.
type StalenessAssessment struct {
	DaysInStore       int    `json:"days_in_store"`
	DaysSinceLastSale int    `json:"days_since_last_sale"`
	Tier              string `json:"tier"`
	Policy            string `json:"policy"`
}

// Suggestion urgencies.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Suggestion types.
const (
	SuggestionDiscount    = "discount"
	SuggestionBundle      = "bundle"
	SuggestionReposition  = "reposition"
	SuggestionSeasonal    = "seasonal"
	SuggestionMarketing   = "marketing"
	SuggestionClearance   = "clearance"
	SuggestionLiquidation = "liquidation"
	SuggestionPromotion   = "promotion"
	SuggestionCrossSell   = "cross-sell"
	SuggestionVisibility  = "visibility"
	SuggestionCategory    = "category"
)

// Suggestion is one remediation proposal for a flagged product. Generated
// fresh on each request, never persisted.
type Suggestion struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Urgency        string   `json:"urgency"`
	ExpectedImpact string   `json:"expected_impact"`
	ActionSteps    []string `json:"action_steps"`
}

// DataDrivenSuggestion is the confidence-scored variant produced by the
// turnover-based path. Kept as a separate schema from Suggestion.
type DataDrivenSuggestion struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Urgency        string   `json:"urgency"`
	Confidence     string   `json:"confidence"`
	ExpectedImpact string   `json:"expected_impact"`
	ActionSteps    []string `json:"action_steps"`
}

// RiskReportEntry pairs a product with its classifications.
type RiskReportEntry struct {
	Product   ProductSignal       `json:"product"`
	Forecast  ForecastAssessment  `json:"forecast"`
	Staleness StalenessAssessment `json:"staleness"`
}

// RiskReport is the classified view of a catalog snapshot.
type RiskReport struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Threshold   int               `json:"threshold"`
	Entries     []RiskReportEntry `json:"entries"`
}

// ShopInfo identifies the store in outbound notifications.
type ShopInfo struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// Platform visibility statuses.
const (
	StatusActive = "ACTIVE"
	StatusDraft  = "DRAFT"
)

// CatalogProduct is one row of the platform catalog snapshot.
type CatalogProduct struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Stock  int    `json:"stock"`
	Status string `json:"status"`
}

// StockLevel is the minimal product shape a bulk visibility update needs.
type StockLevel struct {
	ID    string `json:"id"`
	Stock int    `json:"stock"`
}

// BulkSummary holds the derived counts for one reconciliation pass.
type BulkSummary struct {
	Hidden int `json:"hidden"`
	Shown  int `json:"shown"`
	Errors int `json:"errors"`
	Total  int `json:"total"`
}

// BulkOutcome is the result of one reconciliation pass. Hidden and Shown are
// disjoint: a product is evaluated for at most one directional change.
type BulkOutcome struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Hidden  []string    `json:"hidden"`
	Shown   []string    `json:"shown"`
	Errors  []string    `json:"errors"`
	Summary BulkSummary `json:"summary"`
}
