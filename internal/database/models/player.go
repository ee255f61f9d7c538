package models

// Player is an employee with a position on the pitch
type Player struct {
	Employee
	Position Position `json:"position" gorm:"type:varchar(20);not null" validate:"required"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
