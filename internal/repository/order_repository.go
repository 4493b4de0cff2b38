package repository

import (
	"context"
	"database/sql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

// DateLayout is the DATE column format used for bound parameters.
const DateLayout = "2006-01-02"

const (
	qListOrders = `SELECT Orders.orderID, Orders.orderDate,
	                      CONCAT(Customers.firstName, ' ', Customers.lastName) AS customerName,
	                      Customers.email AS customerEmail
	               FROM Orders
	               INNER JOIN Customers ON Orders.customerID = Customers.customerID
	               ORDER BY Orders.orderID`
	qOrderOptions = `SELECT Orders.orderID, CONCAT('#', Orders.orderID, ' ', Customers.firstName, ' ', Customers.lastName)
	                 FROM Orders
	                 INNER JOIN Customers ON Orders.customerID = Customers.customerID
	                 ORDER BY Orders.orderID`
	qInsertOrder = `INSERT INTO Orders (orderDate, customerID) VALUES (?, ?)`
	qUpdateOrder = `UPDATE Orders SET orderDate = ?, customerID = ? WHERE orderID = ?`
	qDeleteOrder = `DELETE FROM Orders WHERE orderID = ?`
)

// OrderRepo encapsulates all statements on the Orders table.
type OrderRepo struct {
	db database.Executor
}

func NewOrderRepo(db database.Executor) *OrderRepo {
	return &OrderRepo{db: db}
}

// List returns every order with the placing customer's name and email.
func (r *OrderRepo) List(ctx context.Context) ([]model.OrderRow, error) {
	return scanAll(ctx, r.db, "orders.list", qListOrders, func(rows *sql.Rows, o *model.OrderRow) error {
		return rows.Scan(&o.ID, &o.OrderDate, &o.CustomerName, &o.CustomerEmail)
	})
}

// Options returns order ids labelled with the customer for link forms.
func (r *OrderRepo) Options(ctx context.Context) ([]model.Option, error) {
	return scanAll(ctx, r.db, "orders.options", qOrderOptions, scanOption)
}

func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	id, err := insert(ctx, r.db, "orders.create", qInsertOrder, o.OrderDate.Format(DateLayout), o.CustomerID)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

func (r *OrderRepo) Update(ctx context.Context, o model.Order) error {
	return execOne(ctx, r.db, "orders.update", qUpdateOrder, o.OrderDate.Format(DateLayout), o.CustomerID, o.ID)
}

// Delete fails with a ConstraintError while StocksHasOrders rows reference
// the order.
func (r *OrderRepo) Delete(ctx context.Context, id uint64) error {
	return execOne(ctx, r.db, "orders.delete", qDeleteOrder, id)
}
