package router // package router declares the static route table of the site

import (
	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/handler"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/middleware"
)

// RegisterPages maps every listing page.
func RegisterPages(e *echo.Echo, h *handler.InventoryHandler) {
	e.GET("/", h.Home)
	e.GET("/board-games", h.ListBoardGames)
	e.GET("/customers", h.ListCustomers)
	e.GET("/orders", h.ListOrders)
	e.GET("/rentals", h.ListRentals)
	e.GET("/stocks", h.ListStocks)
	e.GET("/genres", h.ListGenres)
	e.GET("/stocks-has-rentals", h.ListStockRentals)
	e.GET("/stocks-has-orders", h.ListStockOrders)
}

// RegisterMutations maps every form submission.  Each handler runs one
// statement and redirects back to its listing page.
func RegisterMutations(e *echo.Echo, h *handler.InventoryHandler) {
	e.POST("/genres/create", h.CreateGenre)
	e.POST("/genres/update", h.UpdateGenre)
	e.POST("/genres/delete", h.DeleteGenre)

	e.POST("/customers/create", h.CreateCustomer)
	e.POST("/customers/update", h.UpdateCustomer)
	e.POST("/customers/delete", h.DeleteCustomer)

	e.POST("/orders/create", h.CreateOrder)
	e.POST("/orders/update", h.UpdateOrder)
	e.POST("/orders/delete", h.DeleteOrder)

	e.POST("/rentals/create", h.CreateRental)
	e.POST("/rentals/update", h.UpdateRental)
	e.POST("/rentals/delete", h.DeleteRental)

	e.POST("/board-games/create", h.CreateBoardGame)
	e.POST("/board-games/update", h.UpdateBoardGame)
	e.POST("/board-games/delete", h.DeleteBoardGame)

	e.POST("/stocks/create", h.CreateStock)
	e.POST("/stocks/update", h.UpdateStock)
	e.POST("/stocks/delete", h.DeleteStock)

	e.POST("/stocks-has-rentals/create", h.CreateStockRental)
	e.POST("/stocks-has-rentals/update", h.UpdateStockRental)
	e.POST("/stocks-has-rentals/delete", h.DeleteStockRental)

	e.POST("/stocks-has-orders/create", h.CreateStockOrder)
	e.POST("/stocks-has-orders/update", h.UpdateStockOrder)
	e.POST("/stocks-has-orders/delete", h.DeleteStockOrder)
}

// RegisterAdmin maps the destructive reset and the health check.  Reset is
// POST only and, when a secret is configured, needs a signed token.
func RegisterAdmin(e *echo.Echo, h *handler.InventoryHandler) {
	e.GET("/healthz", h.Health)
	e.POST("/reset-db", h.ResetDB, middleware.RequireResetToken(h.ResetSecret, h.Logger))
}

// Register installs the whole route table.
func Register(e *echo.Echo, h *handler.InventoryHandler) {
	RegisterPages(e, h)
	RegisterMutations(e, h)
	RegisterAdmin(e, h)
}
