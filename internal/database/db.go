// Package database owns the MySQL connection pool and the embedded
// schema migrations.
package database

import (
	"context"
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/pawcare/pet-care-booking/internal/config"
)

// Pool sizing for a workload of short single-statement queries.
const (
	maxOpenConns    = 20
	maxIdleConns    = 10
	connMaxLifetime = 15 * time.Minute
	pingTimeout     = 5 * time.Second
)

// dsn builds the driver DSN from the loaded configuration. ParseTime
// scans DATETIME columns into time.Time, and the UTC location keeps the
// booking-window date math independent of the server's zone.
func dsn(cfg config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Open connects to MySQL, sizes the pool and verifies the connection
// with a bounded ping.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
