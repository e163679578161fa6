package entity

// Freezer is a physical freezer appliance holding drawers.
type Freezer struct {
	ID   string
	Name string // globally unique
}
