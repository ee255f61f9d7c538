package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "football-manager-backend/internal/errors"
)

// Club is the aggregate that owns the budget invariant: after every
// successful mutation the budget covers the salaries of all current members.
// The budget changes only through AcceptMember, ReleaseMember and
// AdjustBudget so that every legal change is traceable to a business event
// and checked where it could break the invariant.
type Club struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Budget    decimal.Decimal `json:"budget" gorm:"type:decimal(20,4);not null"`
	Version   int             `json:"-" gorm:"not null;default:1"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Cached roster view for payroll aggregation; the authoritative
	// membership reference lives on the employee side (Employee.ClubID).
	Players []Player `json:"players,omitempty" gorm:"foreignKey:ClubID"`
	Coaches []Coach  `json:"coaches,omitempty" gorm:"foreignKey:ClubID"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}

// NewClub creates a club with its initial budget
func NewClub(name string, budget decimal.Decimal) *Club {
	return &Club{Name: name, Budget: budget}
}

// AcceptMember debits the employee's salary from the budget. It fails when
// the employee is already rostered (here or elsewhere), has no positive
// salary, or the budget cannot cover the salary. On failure the club is
// unchanged.
func (c *Club) AcceptMember(e *Employee) error {
	if e.IsAttached() {
		if e.AttachedTo(c.ID) {
			return &apperrors.DomainViolationError{
				Reason:  apperrors.ReasonAlreadyRostered,
				Message: fmt.Sprintf("%s is already on the roster of this club", e.FullName()),
			}
		}
		return &apperrors.DomainViolationError{
			Reason:  apperrors.ReasonAlreadyRostered,
			Message: fmt.Sprintf("%s is already assigned to another club", e.FullName()),
		}
	}
	if !e.Salary.IsPositive() {
		return apperrors.ErrInvalidSalary
	}
	if c.Budget.LessThan(e.Salary) {
		return apperrors.ErrInsufficientBudget
	}

	c.Budget = c.Budget.Sub(e.Salary)
	return nil
}

// ReleaseMember credits the employee's salary back to the budget. The
// employee must currently be attached to this club.
func (c *Club) ReleaseMember(e *Employee) error {
	if !e.AttachedTo(c.ID) {
		return &apperrors.DomainViolationError{
			Reason:  apperrors.ReasonNotAMember,
			Message: fmt.Sprintf("cannot release %s: not a member of this club", e.FullName()),
		}
	}

	c.Budget = c.Budget.Add(e.Salary)
	return nil
}

// AdjustBudget applies a delta to the budget, refusing any change that would
// drop it below the club's current payroll. The payroll is supplied by the
// caller because the aggregate does not always hold a fresh roster view; the
// version-checked save closes the fetch/commit race.
func (c *Club) AdjustBudget(delta, currentPayroll decimal.Decimal) error {
	newBudget := c.Budget.Add(delta)
	if newBudget.LessThan(currentPayroll) {
		return apperrors.ErrBelowPayrollFloor
	}

	c.Budget = newBudget
	return nil
}
