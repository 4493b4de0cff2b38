package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
)

// ListOrders handles GET /orders.  The customer list feeds the forms.
func (h *InventoryHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	orders, err := h.Repos.Orders.List(ctx)
	if err != nil {
		return h.fail(c, "orders.list", msgQueryFailed, err)
	}
	customers, err := h.Repos.Customers.Options(ctx)
	if err != nil {
		return h.fail(c, "customers.options", msgQueryFailed, err)
	}
	return h.render(c, "orders", "Orders", map[string]any{"orders": orders, "customers": customers})
}

// CreateOrder handles POST /orders/create.
func (h *InventoryHandler) CreateOrder(c echo.Context) error {
	const msg = "An error occurred while creating the order."
	f := form(c)
	o := &model.Order{
		OrderDate:  f.Date("create_order_date"),
		CustomerID: f.ID("create_order_customer"),
	}
	if err := f.Err(); err != nil {
		return h.fail(c, "orders.create", msg, err)
	}
	if err := h.Repos.Orders.Create(c.Request().Context(), o); err != nil {
		return h.fail(c, "orders.create", msg, err)
	}
	return h.done(c, "orders", queue.ActionCreate, idKey(o.ID), "/orders")
}

// UpdateOrder handles POST /orders/update.
func (h *InventoryHandler) UpdateOrder(c echo.Context) error {
	const msg = "An error occurred while updating the order."
	f := form(c)
	o := model.Order{
		ID:         f.ID("update_order_id"),
		OrderDate:  f.Date("update_order_date"),
		CustomerID: f.ID("update_order_customer"),
	}
	if err := f.Err(); err != nil {
		return h.fail(c, "orders.update", msg, err)
	}
	if err := h.Repos.Orders.Update(c.Request().Context(), o); err != nil {
		return h.fail(c, "orders.update", msg, err)
	}
	return h.done(c, "orders", queue.ActionUpdate, idKey(o.ID), "/orders")
}

// DeleteOrder handles POST /orders/delete.
func (h *InventoryHandler) DeleteOrder(c echo.Context) error {
	const msg = "An error occurred while deleting the order."
	f := form(c)
	id := f.ID("delete_order_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "orders.delete", msg, err)
	}
	if err := h.Repos.Orders.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "orders.delete", msg, err)
	}
	return h.done(c, "orders", queue.ActionDelete, idKey(id), "/orders")
}
