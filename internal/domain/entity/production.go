package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanStatus estado de un plan de producción.
type PlanStatus string

const (
	PlanStatusDraft      PlanStatus = "draft"
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusCompleted  PlanStatus = "completed"
	PlanStatusCancelled  PlanStatus = "cancelled"
)

// ProductionPlan plan de producción diario de la cocina central.
type ProductionPlan struct {
	ID        int64
	ChainID   int64
	StartDate time.Time // fecha (sin hora) en la que arranca el plan
	Status    PlanStatus
}

// ProductionDetail lote individual dentro de un plan: cuánto se planeó y
// cuánto se produjo de un insumo.
type ProductionDetail struct {
	ID               int64
	PlanID           int64
	ItemID           int64
	QuantityPlanned  decimal.Decimal
	QuantityProduced decimal.Decimal
	Status           string
	StartedAt        *time.Time
	CompletedAt      *time.Time
}
