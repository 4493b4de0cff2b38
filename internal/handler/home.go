package handler

import "github.com/labstack/echo/v4"

// Home renders the landing page.
func (h *InventoryHandler) Home(c echo.Context) error {
	return h.render(c, "home", "Home", nil)
}
