package handler

import (
	"database/sql/driver"
	"net/http"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
)

// Each mutation route posts the field names its form template uses and must
// bind them, in statement order, to the repository's statement.
func TestMutationFormsBindFields(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		handler  func(*InventoryHandler) echo.HandlerFunc
		form     url.Values
		stmt     string
		args     []driver.Value
		location string
	}{
		{
			name:    "update genre",
			path:    "/genres/update",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.UpdateGenre },
			form: url.Values{
				"update_genre_id":          {"2"},
				"update_genre_name":        {"Party"},
				"update_genre_description": {"Light games"},
			},
			stmt:     "UPDATE Genres SET genreName",
			args:     []driver.Value{"Party", "Light games", 2},
			location: "/genres",
		},
		{
			name:    "update customer",
			path:    "/customers/update",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.UpdateCustomer },
			form: url.Values{
				"update_customer_id":          {"3"},
				"update_customer_firstName":   {"Grace"},
				"update_customer_lastName":    {"Hopper"},
				"update_customer_email":       {"grace@example.com"},
				"update_customer_phoneNumber": {"541-555-0103"},
			},
			stmt:     "UPDATE Customers SET firstName",
			args:     []driver.Value{"Grace", "Hopper", "grace@example.com", "541-555-0103", 3},
			location: "/customers",
		},
		{
			name:     "delete customer",
			path:     "/customers/delete",
			handler:  func(h *InventoryHandler) echo.HandlerFunc { return h.DeleteCustomer },
			form:     url.Values{"delete_customer_id": {"3"}},
			stmt:     "DELETE FROM Customers WHERE customerID",
			args:     []driver.Value{3},
			location: "/customers",
		},
		{
			name:    "create order",
			path:    "/orders/create",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.CreateOrder },
			form: url.Values{
				"create_order_date":     {"2024-01-15"},
				"create_order_customer": {"1"},
			},
			stmt:     "INSERT INTO Orders",
			args:     []driver.Value{"2024-01-15", 1},
			location: "/orders",
		},
		{
			name:    "update order",
			path:    "/orders/update",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.UpdateOrder },
			form: url.Values{
				"update_order_id":       {"5"},
				"update_order_date":     {"2024-02-01"},
				"update_order_customer": {"2"},
			},
			stmt:     "UPDATE Orders SET orderDate",
			args:     []driver.Value{"2024-02-01", 2, 5},
			location: "/orders",
		},
		{
			name:     "delete order",
			path:     "/orders/delete",
			handler:  func(h *InventoryHandler) echo.HandlerFunc { return h.DeleteOrder },
			form:     url.Values{"delete_order_id": {"5"}},
			stmt:     "DELETE FROM Orders WHERE orderID",
			args:     []driver.Value{5},
			location: "/orders",
		},
		{
			name:    "update rental",
			path:    "/rentals/update",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.UpdateRental },
			form: url.Values{
				"update_rental_id":       {"2"},
				"update_rental_date":     {"2024-03-05"},
				"update_return_date":     {"2024-03-12"},
				"update_rental_customer": {"2"},
			},
			stmt:     "UPDATE Rentals SET rentalDate",
			args:     []driver.Value{"2024-03-05", "2024-03-12", 2, 2},
			location: "/rentals",
		},
		{
			name:     "delete rental",
			path:     "/rentals/delete",
			handler:  func(h *InventoryHandler) echo.HandlerFunc { return h.DeleteRental },
			form:     url.Values{"delete_rental_id": {"1"}},
			stmt:     "DELETE FROM Rentals WHERE rentalID",
			args:     []driver.Value{1},
			location: "/rentals",
		},
		{
			name:    "update board game",
			path:    "/board-games/update",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.UpdateBoardGame },
			form: url.Values{
				"update_game_id":        {"1"},
				"update_game_name":      {"Catan"},
				"update_game_genre":     {"1"},
				"update_game_numPlayer": {"4"},
				"update_game_price":     {"44.99"},
			},
			stmt:     "UPDATE BoardGames SET gameName",
			args:     []driver.Value{"Catan", 1, 4, 44.99, 1},
			location: "/board-games",
		},
		{
			name:     "delete board game",
			path:     "/board-games/delete",
			handler:  func(h *InventoryHandler) echo.HandlerFunc { return h.DeleteBoardGame },
			form:     url.Values{"delete_game_id": {"2"}},
			stmt:     "DELETE FROM BoardGames WHERE boardGameID",
			args:     []driver.Value{2},
			location: "/board-games",
		},
		{
			name:    "create stock",
			path:    "/stocks/create",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.CreateStock },
			form: url.Values{
				"create_stock_game":      {"3"},
				"create_stock_numItem":   {"4"},
				"create_stock_numRented": {"0"},
			},
			stmt:     "INSERT INTO Stocks ",
			args:     []driver.Value{3, 4, 0},
			location: "/stocks",
		},
		{
			name:    "update stock",
			path:    "/stocks/update",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.UpdateStock },
			form: url.Values{
				"update_stock_id":        {"1"},
				"update_stock_game":      {"1"},
				"update_stock_numItem":   {"6"},
				"update_stock_numRented": {"2"},
			},
			stmt:     "UPDATE Stocks SET boardGameID",
			args:     []driver.Value{1, 6, 2, 1},
			location: "/stocks",
		},
		{
			name:     "delete stock",
			path:     "/stocks/delete",
			handler:  func(h *InventoryHandler) echo.HandlerFunc { return h.DeleteStock },
			form:     url.Values{"delete_stock_id": {"3"}},
			stmt:     "DELETE FROM Stocks WHERE stockID",
			args:     []driver.Value{3},
			location: "/stocks",
		},
		{
			name:    "create stock rental",
			path:    "/stocks-has-rentals/create",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.CreateStockRental },
			form: url.Values{
				"create_stock_id":  {"3"},
				"create_rental_id": {"1"},
			},
			stmt:     "INSERT INTO StocksHasRentals",
			args:     []driver.Value{3, 1},
			location: "/stocks-has-rentals",
		},
		{
			name:    "delete stock rental",
			path:    "/stocks-has-rentals/delete",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.DeleteStockRental },
			form: url.Values{
				"delete_stock_id":  {"1"},
				"delete_rental_id": {"2"},
			},
			stmt:     "DELETE FROM StocksHasRentals WHERE stockID",
			args:     []driver.Value{1, 2},
			location: "/stocks-has-rentals",
		},
		{
			name:    "create stock order",
			path:    "/stocks-has-orders/create",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.CreateStockOrder },
			form: url.Values{
				"create_stock_id": {"1"},
				"create_order_id": {"3"},
			},
			stmt:     "INSERT INTO StocksHasOrders",
			args:     []driver.Value{1, 3},
			location: "/stocks-has-orders",
		},
		{
			name:    "update stock order",
			path:    "/stocks-has-orders/update",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.UpdateStockOrder },
			form: url.Values{
				"update_stock_id":     {"2"},
				"update_order_id":     {"2"},
				"update_new_order_id": {"3"},
			},
			stmt:     "UPDATE StocksHasOrders SET orderID",
			args:     []driver.Value{3, 2, 2},
			location: "/stocks-has-orders",
		},
		{
			name:    "delete stock order",
			path:    "/stocks-has-orders/delete",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.DeleteStockOrder },
			form: url.Values{
				"delete_stock_id": {"3"},
				"delete_order_id": {"3"},
			},
			stmt:     "DELETE FROM StocksHasOrders WHERE stockID",
			args:     []driver.Value{3, 3},
			location: "/stocks-has-orders",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mock.ExpectExec(tt.stmt).WithArgs(tt.args...).WillReturnResult(sqlmock.NewResult(9, 1))

			rec := f.post(tt.path, tt.handler(f.h), tt.form)
			assertRedirect(t, rec, tt.location)
			if len(f.pub.events) != 1 {
				t.Fatalf("events = %d, want 1", len(f.pub.events))
			}
		})
	}
}

func TestCreateLinkDuplicatePairFails(t *testing.T) {
	duplicate := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-2' for key 'PRIMARY'"}
	tests := []struct {
		name    string
		path    string
		handler func(*InventoryHandler) echo.HandlerFunc
		form    url.Values
		stmt    string
		msg     string
	}{
		{
			name:    "stock rental",
			path:    "/stocks-has-rentals/create",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.CreateStockRental },
			form:    url.Values{"create_stock_id": {"1"}, "create_rental_id": {"2"}},
			stmt:    "INSERT INTO StocksHasRentals",
			msg:     "An error occurred while linking the stock to the rental.",
		},
		{
			name:    "stock order",
			path:    "/stocks-has-orders/create",
			handler: func(h *InventoryHandler) echo.HandlerFunc { return h.CreateStockOrder },
			form:    url.Values{"create_stock_id": {"1"}, "create_order_id": {"2"}},
			stmt:    "INSERT INTO StocksHasOrders",
			msg:     "An error occurred while linking the stock to the order.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mock.ExpectExec(tt.stmt).WithArgs(1, 2).WillReturnError(duplicate)

			rec := f.post(tt.path, tt.handler(f.h), tt.form)
			assertGeneric500(t, rec, tt.msg)
			if len(f.pub.events) != 0 {
				t.Error("failed link must not publish")
			}
		})
	}
}

func TestRenderFailureIsPlainText(t *testing.T) {
	f := newFixture(t)
	f.e.Renderer = nil
	f.mock.ExpectQuery("FROM Genres ORDER BY genreID").WillReturnRows(
		sqlmock.NewRows([]string{"genreID", "genreName", "genreDescription"}).AddRow(1, "Strategy", "Deep"))

	rec := f.get("/genres", f.h.ListGenres)
	assertGeneric500(t, rec, msgQueryFailed)
	if ct := rec.Header().Get(echo.HeaderContentType); ct != echo.MIMETextPlainCharsetUTF8 {
		t.Errorf("Content-Type = %q, want plain text", ct)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}
