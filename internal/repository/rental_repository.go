package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/database"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
)

const (
	qListRentals = `SELECT Rentals.rentalID, Rentals.rentalDate, Rentals.returnDate,
	                       CONCAT(Customers.firstName, ' ', Customers.lastName) AS customerName,
	                       Customers.email AS customerEmail
	                FROM Rentals
	                INNER JOIN Customers ON Rentals.customerID = Customers.customerID
	                ORDER BY Rentals.rentalID`
	qRentalOptions = `SELECT Rentals.rentalID, CONCAT('#', Rentals.rentalID, ' ', Customers.firstName, ' ', Customers.lastName)
	                  FROM Rentals
	                  INNER JOIN Customers ON Rentals.customerID = Customers.customerID
	                  ORDER BY Rentals.rentalID`
	qInsertRental = `INSERT INTO Rentals (rentalDate, returnDate, customerID) VALUES (?, ?, ?)`
	qUpdateRental = `UPDATE Rentals SET rentalDate = ?, returnDate = ?, customerID = ? WHERE rentalID = ?`
	qDeleteRental = `DELETE FROM Rentals WHERE rentalID = ?`
)

// RentalRepo encapsulates all statements on the Rentals table.
type RentalRepo struct {
	db database.Executor
}

func NewRentalRepo(db database.Executor) *RentalRepo {
	return &RentalRepo{db: db}
}

// List returns every rental with the renting customer's name and email.
// ReturnDate is nil for rentals still out.
func (r *RentalRepo) List(ctx context.Context) ([]model.RentalRow, error) {
	return scanAll(ctx, r.db, "rentals.list", qListRentals, func(rows *sql.Rows, rr *model.RentalRow) error {
		var ret sql.NullTime
		if err := rows.Scan(&rr.ID, &rr.RentalDate, &ret, &rr.CustomerName, &rr.CustomerEmail); err != nil {
			return err
		}
		if ret.Valid {
			t := ret.Time
			rr.ReturnDate = &t
		}
		return nil
	})
}

// Options returns rental ids labelled with the customer for link forms.
func (r *RentalRepo) Options(ctx context.Context) ([]model.Option, error) {
	return scanAll(ctx, r.db, "rentals.options", qRentalOptions, scanOption)
}

func (r *RentalRepo) Create(ctx context.Context, rt *model.Rental) error {
	id, err := insert(ctx, r.db, "rentals.create", qInsertRental,
		rt.RentalDate.Format(DateLayout), returnDateArg(rt.ReturnDate), rt.CustomerID)
	if err != nil {
		return err
	}
	rt.ID = id
	return nil
}

// Update rewrites all columns; a nil ReturnDate marks the rental as out
// again.
func (r *RentalRepo) Update(ctx context.Context, rt model.Rental) error {
	return execOne(ctx, r.db, "rentals.update", qUpdateRental,
		rt.RentalDate.Format(DateLayout), returnDateArg(rt.ReturnDate), rt.CustomerID, rt.ID)
}

func (r *RentalRepo) Delete(ctx context.Context, id uint64) error {
	return execOne(ctx, r.db, "rentals.delete", qDeleteRental, id)
}

// returnDateArg binds NULL for an open rental.
func returnDateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(DateLayout)
}
