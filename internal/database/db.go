package database

import (
	"context"
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/config"
)

// DriverConfig builds the driver configuration shared by the pool and the
// reset connection.
func DriverConfig(cfg config.Config) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps dates stable
	mc.ParseTime = true
	mc.Loc = time.UTC
	// RowsAffected counts matched rows, so an UPDATE with unchanged values
	// is not mistaken for a missing key.
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc
}

// Open connects to MySQL and verifies the connection.  The pool never holds
// more than cfg.DBMaxConns connections; callers beyond that wait for one to
// be released.
func Open(cfg config.Config) (*sql.DB, error) {
	connector, err := mysql.NewConnector(DriverConfig(cfg))
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(cfg.DBMaxConns)
	db.SetMaxIdleConns(cfg.DBMaxConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
