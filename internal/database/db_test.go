package database

import (
	"strings"
	"testing"

	"github.com/pawcare/pet-care-booking/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "app",
		DBHost: "127.0.0.1",
		DBPort: "3306",
		DBName: "petcare",
	}

	got := dsn(cfg)
	for _, want := range []string{
		"app@tcp(127.0.0.1:3306)/petcare",
		"parseTime=true",
		"charset=utf8mb4",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dsn = %q, missing %q", got, want)
		}
	}

	cfg.DBPass = "s3cret"
	if got := dsn(cfg); !strings.Contains(got, "app:s3cret@tcp(") {
		t.Errorf("dsn = %q, want embedded credentials", got)
	}
}
