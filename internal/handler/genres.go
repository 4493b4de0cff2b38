package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/model"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
)

// ListGenres handles GET /genres.
func (h *InventoryHandler) ListGenres(c echo.Context) error {
	genres, err := h.Repos.Genres.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "genres.list", msgQueryFailed, err)
	}
	return h.render(c, "genres", "Genres", map[string]any{"genres": genres})
}

// CreateGenre handles POST /genres/create.
func (h *InventoryHandler) CreateGenre(c echo.Context) error {
	const msg = "An error occurred while creating the genre."
	f := form(c)
	g := &model.Genre{
		Name:        f.String("create_genre_name"),
		Description: f.String("create_genre_description"),
	}
	if err := f.Err(); err != nil {
		return h.fail(c, "genres.create", msg, err)
	}
	if err := h.Repos.Genres.Create(c.Request().Context(), g); err != nil {
		return h.fail(c, "genres.create", msg, err)
	}
	return h.done(c, "genres", queue.ActionCreate, idKey(g.ID), "/genres")
}

// UpdateGenre handles POST /genres/update.
func (h *InventoryHandler) UpdateGenre(c echo.Context) error {
	const msg = "An error occurred while updating the genre."
	f := form(c)
	g := model.Genre{
		ID:          f.ID("update_genre_id"),
		Name:        f.String("update_genre_name"),
		Description: f.String("update_genre_description"),
	}
	if err := f.Err(); err != nil {
		return h.fail(c, "genres.update", msg, err)
	}
	if err := h.Repos.Genres.Update(c.Request().Context(), g); err != nil {
		return h.fail(c, "genres.update", msg, err)
	}
	return h.done(c, "genres", queue.ActionUpdate, idKey(g.ID), "/genres")
}

// DeleteGenre handles POST /genres/delete.  The database refuses while board
// games reference the genre.
func (h *InventoryHandler) DeleteGenre(c echo.Context) error {
	const msg = "An error occurred while deleting the genre."
	f := form(c)
	id := f.ID("delete_genre_id")
	if err := f.Err(); err != nil {
		return h.fail(c, "genres.delete", msg, err)
	}
	if err := h.Repos.Genres.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "genres.delete", msg, err)
	}
	return h.done(c, "genres", queue.ActionDelete, idKey(id), "/genres")
}
