package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Employee holds the identity, compensation and club membership shared by
// players and coaches. The ClubID reference is the single source of truth for
// "is attached" checks: an employee belongs to at most one club at a time,
// and membership changes only through JoinClub/LeaveClub.
type Employee struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	FirstName   string          `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName    string          `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email       string          `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	DateOfBirth time.Time       `json:"date_of_birth" gorm:"type:date;not null"`
	Salary      decimal.Decimal `json:"salary" gorm:"type:decimal(20,4);not null"`
	ClubID      *uint           `json:"club_id,omitempty" gorm:"index"`
	Version     int             `json:"-" gorm:"not null;default:1"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// JoinClub attaches the employee to the given club. Budget validation is the
// club's responsibility; the employee only tracks the membership reference.
func (e *Employee) JoinClub(club *Club) {
	e.ClubID = &club.ID
}

// LeaveClub detaches the employee from its club. Calling it on an unattached
// employee is a safe no-op.
func (e *Employee) LeaveClub() {
	e.ClubID = nil
}

// IsAttached reports whether the employee currently belongs to any club
func (e *Employee) IsAttached() bool {
	return e.ClubID != nil
}

// AttachedTo reports whether the employee currently belongs to the given club
func (e *Employee) AttachedTo(clubID uint) bool {
	return e.ClubID != nil && *e.ClubID == clubID
}

// FullName returns the employee's display name
func (e *Employee) FullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}
