package model

// StockRental links a stock entry to a rental.  The pair is the identity;
// neither side is unique on its own.
type StockRental struct {
	StockID  uint64 // StocksHasRentals.stockID
	RentalID uint64 // StocksHasRentals.rentalID
}

// StockOrder links a stock entry to an order.
type StockOrder struct {
	StockID uint64 // StocksHasOrders.stockID
	OrderID uint64 // StocksHasOrders.orderID
}

// Option is one entry of a form dropdown.
type Option struct {
	ID    uint64
	Label string
}
