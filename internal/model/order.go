package model

import "time"

// Order is a purchase made by a customer.  The stock it covers is recorded
// in StocksHasOrders.
type Order struct {
	ID         uint64    // Orders.orderID
	OrderDate  time.Time // Orders.orderDate
	CustomerID uint64    // Orders.customerID
}

// OrderRow is a listing row with the customer resolved.
type OrderRow struct {
	ID            uint64
	OrderDate     time.Time
	CustomerName  string
	CustomerEmail string
}
