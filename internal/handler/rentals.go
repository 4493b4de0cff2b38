package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/validator"
)

// ListRentals handles GET /rentals.
func (h *InventoryHandler) ListRentals(c echo.Context) error {
	ctx := c.Request().Context()
	rentals, err := h.Repos.Rentals.List(ctx)
	if err != nil {
		return h.fail(c, "rentals.list", msgQueryFailed, err)
	}
	customers, err := h.Repos.Customers.Options(ctx)
	if err != nil {
		return h.fail(c, "customers.options", msgQueryFailed, err)
	}
	return h.render(c, "rentals", "Rentals", map[string]any{"rentals": rentals, "customers": customers})
}

// readRental decodes the rental fields.  An empty return date means the
// rental is still out.
func readRental(f *validator.Form, rentalDate, returnDate, customer string) model.Rental {
	rt := model.Rental{
		RentalDate: f.Date(rentalDate),
		ReturnDate: f.OptionalDate(returnDate),
		CustomerID: f.ID(customer),
	}
	if rt.ReturnDate != nil && !rt.RentalDate.IsZero() {
		f.Check(!rt.ReturnDate.Before(rt.RentalDate), returnDate, "must not be before the rental date")
	}
	return rt
}

// CreateRental handles POST /rentals/create.
func (h *InventoryHandler) CreateRental(c echo.Context) error {
	const msg = "An error occurred while creating the rental."
	f := form(c)
	rt := readRental(f, "create_rental_date", "create_return_date", "create_rental_customer")
	if err := f.Err(); err != nil {
		return h.fail(c, "rentals.create", msg, err)
	}
	if err := h.Repos.Rentals.Create(c.Request().Context(), &rt); err != nil {
		return h.fail(c, "rentals.create", msg, err)
	}
	return h.done(c, "rentals", queue.ActionCreate, idKey(rt.ID), "/rentals")
}

// UpdateRental handles POST /rentals/update.  Setting a return date closes
// the rental.
func (h *InventoryHandler) UpdateRental(c echo.Context) error {
	const msg = "An error occurred while updating the rental."
	f := form(c)
	id := f.ID("update_rental_id")
	rt := readRental(f, "update_rental_date", "update_return_date", "update_rental_customer")
	rt.ID = id
	if err := f.Err(); err != nil {
		return h.fail(c, "rentals.update", msg, err)
	}
	if err := h.Repos.Rentals.Update(c.Request().Context(), rt); err != nil {
		return h.fail(c, "rentals.update", msg, err)
	}
	return h.done(c, "rentals", queue.ActionUpdate, idKey(id), "/rentals")
}

// DeleteRental handles POST /rentals/delete.
func (h *InventoryHandler) DeleteRental(c echo.Context) error {
	const msg = "An error occurred while deleting the rental."
	f := form(c)
	id := f.ID("delete_rental_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "rentals.delete", msg, err)
	}
	if err := h.Repos.Rentals.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "rentals.delete", msg, err)
	}
	return h.done(c, "rentals", queue.ActionDelete, idKey(id), "/rentals")
}
