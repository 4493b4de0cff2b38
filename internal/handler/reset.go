package handler

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
)

// ResetDB handles POST /reset-db: the baseline script drops every table and
// reloads the sample rows.  The browser returns to the page it came from.
func (h *InventoryHandler) ResetDB(c echo.Context) error {
	if err := h.Resetter.Reset(c.Request().Context()); err != nil {
		return h.fail(c, "reset", "An error occurred while resetting the database.", err)
	}
	h.Logger.Warn("database reset to baseline", "request_id", requestID(c), "ip", c.RealIP())
	return h.done(c, "database", queue.ActionReset, "", refererPath(c))
}

// refererPath returns the path of a same-origin Referer, or "/".
func refererPath(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Request().Host) {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.HasPrefix(u.Path, "/\\") {
		return "/"
	}
	p := u.Path
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}
