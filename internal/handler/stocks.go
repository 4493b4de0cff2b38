package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/validator"
)

// ListStocks handles GET /stocks.
func (h *InventoryHandler) ListStocks(c echo.Context) error {
	ctx := c.Request().Context()
	stocks, err := h.Repos.Stocks.List(ctx)
	if err != nil {
		return h.fail(c, "stocks.list", msgQueryFailed, err)
	}
	games, err := h.Repos.BoardGames.Options(ctx)
	if err != nil {
		return h.fail(c, "board_games.options", msgQueryFailed, err)
	}
	return h.render(c, "stocks", "Stocks", map[string]any{"stocks": stocks, "boardGames": games})
}

func readStock(f *validator.Form, prefix string) model.Stock {
	return model.Stock{
		BoardGameID: f.ID(prefix + "game"),
		NumItem:     f.Count(prefix + "numItem"),
		NumRented:   f.Count(prefix + "numRented"),
	}
}

// CreateStock handles POST /stocks/create.
func (h *InventoryHandler) CreateStock(c echo.Context) error {
	const msg = "An error occurred while creating the stock."
	f := form(c)
	s := readStock(f, "create_stock_")
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks.create", msg, err)
	}
	if err := h.Repos.Stocks.Create(c.Request().Context(), &s); err != nil {
		return h.fail(c, "stocks.create", msg, err)
	}
	return h.done(c, "stocks", queue.ActionCreate, idKey(s.ID), "/stocks")
}

// UpdateStock handles POST /stocks/update.
func (h *InventoryHandler) UpdateStock(c echo.Context) error {
	const msg = "An error occurred while updating the stock."
	f := form(c)
	id := f.ID("update_stock_id")
	s := readStock(f, "update_stock_")
	s.ID = id
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks.update", msg, err)
	}
	if err := h.Repos.Stocks.Update(c.Request().Context(), s); err != nil {
		return h.fail(c, "stocks.update", msg, err)
	}
	return h.done(c, "stocks", queue.ActionUpdate, idKey(id), "/stocks")
}

// DeleteStock handles POST /stocks/delete.
func (h *InventoryHandler) DeleteStock(c echo.Context) error {
	const msg = "An error occurred while deleting the stock."
	f := form(c)
	id := f.ID("delete_stock_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "stocks.delete", msg, err)
	}
	if err := h.Repos.Stocks.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "stocks.delete", msg, err)
	}
	return h.done(c, "stocks", queue.ActionDelete, idKey(id), "/stocks")
}
