package repository

// Association tables are addressed by the full (stockID, otherID) pair.
// Update moves an existing pair to a different rental or order; the stock
// side stays fixed.

import (
	"context"
	"database/sql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

const (
	qListStockRentals  = `SELECT stockID, rentalID FROM StocksHasRentals ORDER BY stockID, rentalID`
	qInsertStockRental = `INSERT INTO StocksHasRentals (stockID, rentalID) VALUES (?, ?)`
	qUpdateStockRental = `UPDATE StocksHasRentals SET rentalID = ? WHERE stockID = ? AND rentalID = ?`
	qDeleteStockRental = `DELETE FROM StocksHasRentals WHERE stockID = ? AND rentalID = ?`

	qListStockOrders  = `SELECT stockID, orderID FROM StocksHasOrders ORDER BY stockID, orderID`
	qInsertStockOrder = `INSERT INTO StocksHasOrders (stockID, orderID) VALUES (?, ?)`
	qUpdateStockOrder = `UPDATE StocksHasOrders SET orderID = ? WHERE stockID = ? AND orderID = ?`
	qDeleteStockOrder = `DELETE FROM StocksHasOrders WHERE stockID = ? AND orderID = ?`
)

// StockRentalRepo manages StocksHasRentals rows.
type StockRentalRepo struct {
	db database.Executor
}

func NewStockRentalRepo(db database.Executor) *StockRentalRepo {
	return &StockRentalRepo{db: db}
}

func (r *StockRentalRepo) List(ctx context.Context) ([]model.StockRental, error) {
	return scanAll(ctx, r.db, "stocks_has_rentals.list", qListStockRentals, func(rows *sql.Rows, l *model.StockRental) error {
		return rows.Scan(&l.StockID, &l.RentalID)
	})
}

// Create inserts the pair.  A duplicate pair or a dangling key yields a
// ConstraintError.
func (r *StockRentalRepo) Create(ctx context.Context, l model.StockRental) error {
	_, err := r.db.ExecContext(ctx, qInsertStockRental, l.StockID, l.RentalID)
	return classify("stocks_has_rentals.create", err)
}

// Update repoints the existing pair current to newRentalID.
func (r *StockRentalRepo) Update(ctx context.Context, current model.StockRental, newRentalID uint64) error {
	return execOne(ctx, r.db, "stocks_has_rentals.update", qUpdateStockRental, newRentalID, current.StockID, current.RentalID)
}

func (r *StockRentalRepo) Delete(ctx context.Context, l model.StockRental) error {
	return execOne(ctx, r.db, "stocks_has_rentals.delete", qDeleteStockRental, l.StockID, l.RentalID)
}

// StockOrderRepo manages StocksHasOrders rows.
type StockOrderRepo struct {
	db database.Executor
}

func NewStockOrderRepo(db database.Executor) *StockOrderRepo {
	return &StockOrderRepo{db: db}
}

func (r *StockOrderRepo) List(ctx context.Context) ([]model.StockOrder, error) {
	return scanAll(ctx, r.db, "stocks_has_orders.list", qListStockOrders, func(rows *sql.Rows, l *model.StockOrder) error {
		return rows.Scan(&l.StockID, &l.OrderID)
	})
}

func (r *StockOrderRepo) Create(ctx context.Context, l model.StockOrder) error {
	_, err := r.db.ExecContext(ctx, qInsertStockOrder, l.StockID, l.OrderID)
	return classify("stocks_has_orders.create", err)
}

// Update repoints the existing pair current to newOrderID.
func (r *StockOrderRepo) Update(ctx context.Context, current model.StockOrder, newOrderID uint64) error {
	return execOne(ctx, r.db, "stocks_has_orders.update", qUpdateStockOrder, newOrderID, current.StockID, current.OrderID)
}

func (r *StockOrderRepo) Delete(ctx context.Context, l model.StockOrder) error {
	return execOne(ctx, r.db, "stocks_has_orders.delete", qDeleteStockOrder, l.StockID, l.OrderID)
}
