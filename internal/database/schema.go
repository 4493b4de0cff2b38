package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
)

//go:embed schema/baseline.sql
var baselineScript string

// BaselineScript returns the DDL + seed script the reset operation runs.
// A non-empty path overrides the embedded copy.
func BaselineScript(path string) (string, error) {
	if path == "" {
		return baselineScript, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read schema script: %w", err)
	}
	return string(b), nil
}

// SchemaResetter drops and recreates the whole schema.  It opens its own
// single connection with multi-statement mode enabled so the shared pool
// never accepts batched statements.
type SchemaResetter struct {
	driver *mysql.Config
	path   string
	open   func(*mysql.Config) (*sql.DB, error)
}

func NewSchemaResetter(driver *mysql.Config, scriptPath string) *SchemaResetter {
	return &SchemaResetter{driver: driver, path: scriptPath, open: openMulti}
}

// Reset loads the baseline script and executes it as one batch.
func (r *SchemaResetter) Reset(ctx context.Context) error {
	script, err := BaselineScript(r.path)
	if err != nil {
		return err
	}
	db, err := r.open(r.driver)
	if err != nil {
		return fmt.Errorf("open reset connection: %w", err)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("execute baseline script: %w", err)
	}
	return nil
}

func openMulti(base *mysql.Config) (*sql.DB, error) {
	mc := base.Clone()
	mc.MultiStatements = true
	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	return db, nil
}
