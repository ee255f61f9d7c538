package models

// Coach is an employee with no attributes beyond the shared set
type Coach struct {
	Employee
}

// TableName returns the table name for Coach
func (Coach) TableName() string {
	return "coaches"
}
