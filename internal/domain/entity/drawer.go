package entity

// Drawer is a compartment inside a freezer. Names are unique per freezer, not
// globally.
type Drawer struct {
	ID        string
	FreezerID string
	Name      string
}
