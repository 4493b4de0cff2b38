package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/utils"
)

// ResetTokenField is the form field carrying the reset confirmation token.
const ResetTokenField = "reset_token"

// RequireResetToken rejects a reset submission whose token is missing or
// invalid.  An empty secret disables the check.
func RequireResetToken(secret string, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if secret == "" {
			return next
		}
		return func(c echo.Context) error {
			if err := utils.VerifyResetToken(secret, c.FormValue(ResetTokenField)); err != nil {
				logger.Warn("reset rejected", "ip", c.RealIP(), "err", err)
				return c.String(http.StatusForbidden, "The reset request could not be confirmed.")
			}
			return next(c)
		}
	}
}
