package database

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/config"
)

func TestDriverConfig(t *testing.T) {
	mc := DriverConfig(config.Config{DBUser: "app", DBPass: "pw", DBHost: "db", DBPort: "3307", DBName: "inventory"})
	if mc.Addr != "db:3307" || mc.DBName != "inventory" || mc.User != "app" {
		t.Fatalf("unexpected config %+v", mc)
	}
	if !mc.ParseTime || !mc.ClientFoundRows {
		t.Error("ParseTime and ClientFoundRows must be on")
	}
	if mc.MultiStatements {
		t.Error("the shared pool must not accept multi-statement batches")
	}
}

func TestTracerLogsStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := NewTracer(db, logger)

	mock.ExpectExec("DELETE FROM Genres").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT genreID").WillReturnError(errors.New("boom"))

	if _, err := tr.ExecContext(context.Background(), "DELETE FROM Genres WHERE genreID = ?", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.QueryContext(context.Background(), "SELECT genreID FROM Genres"); err == nil {
		t.Fatal("expected query error")
	}

	out := buf.String()
	for _, want := range []string{"kind=exec", "args=1", "kind=query", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBaselineScript(t *testing.T) {
	s, err := BaselineScript("")
	if err != nil {
		t.Fatal(err)
	}
	for _, table := range []string{"Genres", "BoardGames", "Customers", "Orders", "Rentals", "Stocks", "StocksHasRentals", "StocksHasOrders"} {
		if !strings.Contains(s, "CREATE TABLE "+table+" (") {
			t.Errorf("baseline missing table %s", table)
		}
	}

	path := filepath.Join(t.TempDir(), "custom.sql")
	if err := os.WriteFile(path, []byte("SELECT 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if s, err := BaselineScript(path); err != nil || s != "SELECT 1;" {
		t.Fatalf("override = %q, %v", s, err)
	}
	if _, err := BaselineScript(filepath.Join(t.TempDir(), "missing.sql")); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestSchemaResetterRunsScriptOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	mock.ExpectExec("DROP TABLE IF EXISTS StocksHasOrders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	r := NewSchemaResetter(mysql.NewConfig(), "")
	var opened *mysql.Config
	r.open = func(mc *mysql.Config) (*sql.DB, error) {
		opened = mc
		return db, nil
	}
	if err := r.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if opened == nil {
		t.Fatal("reset connection was not opened")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSchemaResetterPropagatesFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	mock.ExpectExec("SET FOREIGN_KEY_CHECKS").WillReturnError(errors.New("syntax error"))
	mock.ExpectClose()

	r := NewSchemaResetter(mysql.NewConfig(), "")
	r.open = func(*mysql.Config) (*sql.DB, error) { return db, nil }
	if err := r.Reset(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
