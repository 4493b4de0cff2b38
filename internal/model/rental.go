package model

import "time"

// Rental records copies lent to a customer.  ReturnDate stays nil while the
// items are out.
type Rental struct {
	ID         uint64     // Rentals.rentalID
	RentalDate time.Time  // Rentals.rentalDate
	ReturnDate *time.Time // Rentals.returnDate (nullable)
	CustomerID uint64     // Rentals.customerID
}

// RentalRow is a listing row with the customer resolved.
type RentalRow struct {
	ID            uint64
	RentalDate    time.Time
	ReturnDate    *time.Time
	CustomerName  string
	CustomerEmail string
}
