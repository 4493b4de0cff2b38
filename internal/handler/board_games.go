package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/validator"
)

// ListBoardGames handles GET /board-games.  Rows show the genre name; the
// genre list feeds the forms.
func (h *InventoryHandler) ListBoardGames(c echo.Context) error {
	ctx := c.Request().Context()
	games, err := h.Repos.BoardGames.List(ctx)
	if err != nil {
		return h.fail(c, "board_games.list", msgQueryFailed, err)
	}
	genres, err := h.Repos.Genres.Options(ctx)
	if err != nil {
		return h.fail(c, "genres.options", msgQueryFailed, err)
	}
	return h.render(c, "board-games", "Board Games", map[string]any{"boardGames": games, "genres": genres})
}

func readBoardGame(f *validator.Form, prefix string) model.BoardGame {
	return model.BoardGame{
		Name:       f.String(prefix + "name"),
		GenreID:    f.ID(prefix + "genre"),
		NumPlayers: f.Count(prefix + "numPlayer"),
		Price:      f.Amount(prefix + "price"),
	}
}

// CreateBoardGame handles POST /board-games/create.
func (h *InventoryHandler) CreateBoardGame(c echo.Context) error {
	const msg = "An error occurred while creating the board game."
	f := form(c)
	b := readBoardGame(f, "create_game_")
	if err := f.Err(); err != nil {
		return h.fail(c, "board_games.create", msg, err)
	}
	if err := h.Repos.BoardGames.Create(c.Request().Context(), &b); err != nil {
		return h.fail(c, "board_games.create", msg, err)
	}
	return h.done(c, "board_games", queue.ActionCreate, idKey(b.ID), "/board-games")
}

// UpdateBoardGame handles POST /board-games/update.
func (h *InventoryHandler) UpdateBoardGame(c echo.Context) error {
	const msg = "An error occurred while updating the board game."
	f := form(c)
	id := f.ID("update_game_id")
	b := readBoardGame(f, "update_game_")
	b.ID = id
	if err := f.Err(); err != nil {
		return h.fail(c, "board_games.update", msg, err)
	}
	if err := h.Repos.BoardGames.Update(c.Request().Context(), b); err != nil {
		return h.fail(c, "board_games.update", msg, err)
	}
	return h.done(c, "board_games", queue.ActionUpdate, idKey(id), "/board-games")
}

// DeleteBoardGame handles POST /board-games/delete.
func (h *InventoryHandler) DeleteBoardGame(c echo.Context) error {
	const msg = "An error occurred while deleting the board game."
	f := form(c)
	id := f.ID("delete_game_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "board_games.delete", msg, err)
	}
	if err := h.Repos.BoardGames.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "board_games.delete", msg, err)
	}
	return h.done(c, "board_games", queue.ActionDelete, idKey(id), "/board-games")
}
