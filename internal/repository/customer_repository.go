package repository

import (
	"context"
	"database/sql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

// Only rentals without a return date are joined, so the count is the number
// of rentals currently out.
const (
	qListCustomers = `SELECT Customers.customerID, Customers.firstName, Customers.lastName,
	                         Customers.email, Customers.phoneNumber,
	                         COUNT(Rentals.rentalID) AS currentlyRenting
	                  FROM Customers
	                  LEFT JOIN Rentals ON Customers.customerID = Rentals.customerID
	                       AND Rentals.returnDate IS NULL
	                  GROUP BY Customers.customerID, Customers.firstName, Customers.lastName,
	                           Customers.email, Customers.phoneNumber
	                  ORDER BY Customers.customerID`
	qCustomerOptions = `SELECT customerID, CONCAT(firstName, ' ', lastName) FROM Customers ORDER BY lastName, firstName`
	qInsertCustomer  = `INSERT INTO Customers (firstName, lastName, email, phoneNumber) VALUES (?, ?, ?, ?)`
	qUpdateCustomer  = `UPDATE Customers SET firstName = ?, lastName = ?, email = ?, phoneNumber = ? WHERE customerID = ?`
	qDeleteCustomer  = `DELETE FROM Customers WHERE customerID = ?`
)

// CustomerRepo encapsulates all statements on the Customers table.
type CustomerRepo struct {
	db database.Executor
}

func NewCustomerRepo(db database.Executor) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// List returns every customer with the derived currently-renting count.
func (r *CustomerRepo) List(ctx context.Context) ([]model.CustomerRow, error) {
	return scanAll(ctx, r.db, "customers.list", qListCustomers, func(rows *sql.Rows, c *model.CustomerRow) error {
		return rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.CurrentlyRenting)
	})
}

// Options returns id/full-name pairs for order and rental forms.
func (r *CustomerRepo) Options(ctx context.Context) ([]model.Option, error) {
	return scanAll(ctx, r.db, "customers.options", qCustomerOptions, scanOption)
}

// Create inserts c and sets c.ID to the generated identifier.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	id, err := insert(ctx, r.db, "customers.create", qInsertCustomer, c.FirstName, c.LastName, c.Email, c.PhoneNumber)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *CustomerRepo) Update(ctx context.Context, c model.Customer) error {
	return execOne(ctx, r.db, "customers.update", qUpdateCustomer, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.ID)
}

// Delete fails with a ConstraintError while orders or rentals reference
// the customer.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	return execOne(ctx, r.db, "customers.delete", qDeleteCustomer, id)
}
