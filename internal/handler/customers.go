package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/validator"
)

// ListCustomers handles GET /customers.  Each row carries the number of
// rentals the customer has not returned yet.
func (h *InventoryHandler) ListCustomers(c echo.Context) error {
	customers, err := h.Repos.Customers.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "customers.list", msgQueryFailed, err)
	}
	return h.render(c, "customers", "Customers", map[string]any{"customers": customers})
}

func readCustomer(f *validator.Form, prefix string) model.Customer {
	return model.Customer{
		FirstName:   f.String(prefix + "firstName"),
		LastName:    f.String(prefix + "lastName"),
		Email:       f.Email(prefix + "email"),
		PhoneNumber: f.String(prefix + "phoneNumber"),
	}
}

// CreateCustomer handles POST /customers/create.
func (h *InventoryHandler) CreateCustomer(c echo.Context) error {
	const msg = "An error occurred while creating the customer."
	f := form(c)
	cust := readCustomer(f, "create_customer_")
	if err := f.Err(); err != nil {
		return h.fail(c, "customers.create", msg, err)
	}
	if err := h.Repos.Customers.Create(c.Request().Context(), &cust); err != nil {
		return h.fail(c, "customers.create", msg, err)
	}
	h.Logger.Info("customer created", "customer_id", cust.ID)
	return h.done(c, "customers", queue.ActionCreate, idKey(cust.ID), "/customers")
}

// UpdateCustomer handles POST /customers/update.
func (h *InventoryHandler) UpdateCustomer(c echo.Context) error {
	const msg = "An error occurred while updating the customer."
	f := form(c)
	id := f.ID("update_customer_id")
	cust := readCustomer(f, "update_customer_")
	cust.ID = id
	if err := f.Err(); err != nil {
		return h.fail(c, "customers.update", msg, err)
	}
	if err := h.Repos.Customers.Update(c.Request().Context(), cust); err != nil {
		return h.fail(c, "customers.update", msg, err)
	}
	return h.done(c, "customers", queue.ActionUpdate, idKey(id), "/customers")
}

// DeleteCustomer handles POST /customers/delete.
func (h *InventoryHandler) DeleteCustomer(c echo.Context) error {
	const msg = "An error occurred while deleting the customer."
	f := form(c)
	id := f.ID("delete_customer_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "customers.delete", msg, err)
	}
	if err := h.Repos.Customers.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "customers.delete", msg, err)
	}
	return h.done(c, "customers", queue.ActionDelete, idKey(id), "/customers")
}
