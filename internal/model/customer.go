package model

// Customer places orders and rentals.
type Customer struct {
	ID          uint64 // Customers.customerID
	FirstName   string // Customers.firstName
	LastName    string // Customers.lastName
	Email       string // Customers.email
	PhoneNumber string // Customers.phoneNumber
}

// FullName joins first and last name with a single space.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CustomerRow is a listing row.  CurrentlyRenting is derived from the
// customer's rentals that have no return date; it is never stored.
type CustomerRow struct {
	Customer
	CurrentlyRenting int
}
