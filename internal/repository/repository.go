package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

// Repos bundles every entity repository over one executor.
type Repos struct {
	Genres       *GenreRepo
	BoardGames   *BoardGameRepo
	Customers    *CustomerRepo
	Orders       *OrderRepo
	Rentals      *RentalRepo
	Stocks       *StockRepo
	StockRentals *StockRentalRepo
	StockOrders  *StockOrderRepo
}

// New constructs all repositories sharing db.
func New(db database.Executor) *Repos {
	return &Repos{
		Genres:       NewGenreRepo(db),
		BoardGames:   NewBoardGameRepo(db),
		Customers:    NewCustomerRepo(db),
		Orders:       NewOrderRepo(db),
		Rentals:      NewRentalRepo(db),
		Stocks:       NewStockRepo(db),
		StockRentals: NewStockRentalRepo(db),
		StockOrders:  NewStockOrderRepo(db),
	}
}

// insert runs an INSERT and returns the auto-generated id.
func insert(ctx context.Context, db database.Executor, op, q string, args ...any) (uint64, error) {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, classify(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(op, err)
	}
	return uint64(id), nil
}

// execOne runs an UPDATE or DELETE addressed by key and reports ErrNotFound
// when no row matched.
func execOne(ctx context.Context, db database.Executor, op, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return classify(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// scanAll runs a query and collects one value per row.
func scanAll[T any](ctx context.Context, db database.Executor, op, q string, scan func(*sql.Rows, *T) error, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, classify(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return out, nil
}

func scanOption(rows *sql.Rows, o *model.Option) error {
	return rows.Scan(&o.ID, &o.Label)
}
