package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports liveness plus a database ping so load balancers can
// pull an instance whose database connection is gone.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := reqCtx(c)
		defer cancel()
		status := "ok"
		code := http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, echo.Map{
			"status": status,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
