package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	Position     Position
	Department   *string
	HourlyRate   *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Position string

const (
	PositionManager    Position = "Manager"
	PositionSupervisor Position = "Supervisor"
	PositionStaff      Position = "Staff"
)

// DefaultHourlyRate returns the position-based rate in PHP per hour.
func (p Position) DefaultHourlyRate() decimal.Decimal {
	switch p {
	case PositionManager:
		return decimal.NewFromInt(500)
	case PositionSupervisor:
		return decimal.NewFromInt(300)
	default:
		return decimal.NewFromInt(150)
	}
}

// EffectiveHourlyRate resolves the rate used for pay computation: the
// explicit override when set, otherwise the position default.
func (e Employee) EffectiveHourlyRate() decimal.Decimal {
	if e.HourlyRate != nil {
		return *e.HourlyRate
	}
	return e.Position.DefaultHourlyRate()
}
