package entity

// Product is a kind of good that can be stored in a freezer. ExpirationMonths
// is the shelf life used to derive the expiry date of storage entries; it
// defaults to 6 months when not given on creation.
type Product struct {
	ID               string
	Name             string // globally unique
	ExpirationMonths int    // whole months, > 0
}
