package handler

// Association rows are located by the full (stock, rental|order) pair; the
// update forms submit the current pair plus the new rental or order id.

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
)

// ListStockRentals handles GET /stocks-has-rentals.
func (h *InventoryHandler) ListStockRentals(c echo.Context) error {
	ctx := c.Request().Context()
	links, err := h.Repos.StockRentals.List(ctx)
	if err != nil {
		return h.fail(c, "stocks_has_rentals.list", msgQueryFailed, err)
	}
	stocks, err := h.Repos.Stocks.Options(ctx)
	if err != nil {
		return h.fail(c, "stocks.options", msgQueryFailed, err)
	}
	rentals, err := h.Repos.Rentals.Options(ctx)
	if err != nil {
		return h.fail(c, "rentals.options", msgQueryFailed, err)
	}
	return h.render(c, "stocks-has-rentals", "Stocks Has Rentals", map[string]any{
		"stocksHasRentals": links,
		"stocks":           stocks,
		"rentals":          rentals,
	})
}

// CreateStockRental handles POST /stocks-has-rentals/create.
func (h *InventoryHandler) CreateStockRental(c echo.Context) error {
	const msg = "An error occurred while linking the stock to the rental."
	f := form(c)
	l := model.StockRental{StockID: f.ID("create_stock_id"), RentalID: f.ID("create_rental_id")}
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks_has_rentals.create", msg, err)
	}
	if err := h.Repos.StockRentals.Create(c.Request().Context(), l); err != nil {
		return h.fail(c, "stocks_has_rentals.create", msg, err)
	}
	return h.done(c, "stocks_has_rentals", queue.ActionCreate, pairKey("stock", l.StockID, "rental", l.RentalID), "/stocks-has-rentals")
}

// UpdateStockRental handles POST /stocks-has-rentals/update.
func (h *InventoryHandler) UpdateStockRental(c echo.Context) error {
	const msg = "An error occurred while updating the stock rental."
	f := form(c)
	cur := model.StockRental{StockID: f.ID("update_stock_id"), RentalID: f.ID("update_rental_id")}
	next := f.ID("update_new_rental_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks_has_rentals.update", msg, err)
	}
	if err := h.Repos.StockRentals.Update(c.Request().Context(), cur, next); err != nil {
		return h.fail(c, "stocks_has_rentals.update", msg, err)
	}
	return h.done(c, "stocks_has_rentals", queue.ActionUpdate, pairKey("stock", cur.StockID, "rental", next), "/stocks-has-rentals")
}

// DeleteStockRental handles POST /stocks-has-rentals/delete.
func (h *InventoryHandler) DeleteStockRental(c echo.Context) error {
	const msg = "An error occurred while deleting the stock rental."
	f := form(c)
	l := model.StockRental{StockID: f.ID("delete_stock_id"), RentalID: f.ID("delete_rental_id")}
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks_has_rentals.delete", msg, err)
	}
	if err := h.Repos.StockRentals.Delete(c.Request().Context(), l); err != nil {
		return h.fail(c, "stocks_has_rentals.delete", msg, err)
	}
	return h.done(c, "stocks_has_rentals", queue.ActionDelete, pairKey("stock", l.StockID, "rental", l.RentalID), "/stocks-has-rentals")
}

// ListStockOrders handles GET /stocks-has-orders.
func (h *InventoryHandler) ListStockOrders(c echo.Context) error {
	ctx := c.Request().Context()
	links, err := h.Repos.StockOrders.List(ctx)
	if err != nil {
		return h.fail(c, "stocks_has_orders.list", msgQueryFailed, err)
	}
	stocks, err := h.Repos.Stocks.Options(ctx)
	if err != nil {
		return h.fail(c, "stocks.options", msgQueryFailed, err)
	}
	orders, err := h.Repos.Orders.Options(ctx)
	if err != nil {
		return h.fail(c, "orders.options", msgQueryFailed, err)
	}
	return h.render(c, "stocks-has-orders", "Stocks Has Orders", map[string]any{
		"stocksHasOrders": links,
		"stocks":          stocks,
		"orders":          orders,
	})
}

// CreateStockOrder handles POST /stocks-has-orders/create.
func (h *InventoryHandler) CreateStockOrder(c echo.Context) error {
	const msg = "An error occurred while linking the stock to the order."
	f := form(c)
	l := model.StockOrder{StockID: f.ID("create_stock_id"), OrderID: f.ID("create_order_id")}
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks_has_orders.create", msg, err)
	}
	if err := h.Repos.StockOrders.Create(c.Request().Context(), l); err != nil {
		return h.fail(c, "stocks_has_orders.create", msg, err)
	}
	return h.done(c, "stocks_has_orders", queue.ActionCreate, pairKey("stock", l.StockID, "order", l.OrderID), "/stocks-has-orders")
}

// UpdateStockOrder handles POST /stocks-has-orders/update.
func (h *InventoryHandler) UpdateStockOrder(c echo.Context) error {
	const msg = "An error occurred while updating the stock order."
	f := form(c)
	cur := model.StockOrder{StockID: f.ID("update_stock_id"), OrderID: f.ID("update_order_id")}
	next := f.ID("update_new_order_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks_has_orders.update", msg, err)
	}
	if err := h.Repos.StockOrders.Update(c.Request().Context(), cur, next); err != nil {
		return h.fail(c, "stocks_has_orders.update", msg, err)
	}
	return h.done(c, "stocks_has_orders", queue.ActionUpdate, pairKey("stock", cur.StockID, "order", next), "/stocks-has-orders")
}

// DeleteStockOrder handles POST /stocks-has-orders/delete.
func (h *InventoryHandler) DeleteStockOrder(c echo.Context) error {
	const msg = "An error occurred while deleting the stock order."
	f := form(c)
	l := model.StockOrder{StockID: f.ID("delete_stock_id"), OrderID: f.ID("delete_order_id")}
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks_has_orders.delete", msg, err)
	}
	if err := h.Repos.StockOrders.Delete(c.Request().Context(), l); err != nil {
		return h.fail(c, "stocks_has_orders.delete", msg, err)
	}
	return h.done(c, "stocks_has_orders", queue.ActionDelete, pairKey("stock", l.StockID, "order", l.OrderID), "/stocks-has-orders")
}
