// Package router wires handlers, middleware and route groups onto the
// Echo instance. Route layout:
//
//	/healthz                     liveness
//	/v1/auth/*                   register, login, refresh, logout
//	/v1/services, /v1/timeslots  public catalog (cached)
//	/v1/*                        authenticated customer surface
//	/v1/admin/*                  admin surface
package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/pawcare/pet-care-booking/internal/config"
	"github.com/pawcare/pet-care-booking/internal/handler"
	"github.com/pawcare/pet-care-booking/internal/middleware"
	"github.com/pawcare/pet-care-booking/internal/model"
)

// Deps carries everything the routes need.
type Deps struct {
	Cfg           config.Config
	CacheCfg      config.CacheConfig
	RateCfg       config.RateLimitConfig
	Redis         *redis.Client
	Health        echo.HandlerFunc
	Auth          *handler.AuthHandler
	Bookings      *handler.BookingHandler
	Pets          *handler.PetHandler
	Services      *handler.ServiceHandler
	Timeslots     *handler.TimeslotHandler
	Notifications *handler.NotificationHandler
	Stats         *handler.StatsHandler
	Vaccinations  *handler.VaccinationHandler
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error { return v.validate.Struct(i) }

// New builds the Echo instance with all routes registered.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	e.GET("/healthz", d.Health)

	// Unauthenticated auth operations.
	authGroup := e.Group("/v1/auth")
	authGroup.POST("/register", d.Auth.Register)
	authGroup.POST("/login", d.Auth.Login)
	authGroup.POST("/refresh", d.Auth.Refresh)
	authGroup.POST("/refresh-access", d.Auth.RefreshAccess)
	authGroup.POST("/logout", d.Auth.Logout)

	// Public catalog, served through the response cache.
	cached := middleware.ResponseCache(d.CacheCfg, d.Redis)
	e.GET("/v1/services", d.Services.List, cached)
	e.GET("/v1/services/:id", d.Services.Get, cached)
	e.GET("/v1/timeslots", d.Timeslots.List, cached)
	e.GET("/v1/timeslots/:id", d.Timeslots.Get, cached)

	// Authenticated surface, customers and admins alike.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	v1.Use(middleware.RequireRole(model.RoleAdmin, model.RoleCustomer))

	v1.GET("/me", d.Auth.Me)
	v1.PUT("/me", d.Auth.UpdateProfile)

	limited := middleware.RateLimit(d.RateCfg, d.Redis)
	v1.POST("/bookings", d.Bookings.Create, limited)
	v1.GET("/bookings", d.Bookings.ListMine)
	v1.GET("/bookings/:id", d.Bookings.Get)
	v1.PATCH("/bookings/:id/cancel", d.Bookings.Cancel)
	v1.PATCH("/bookings/:id/timeslot", d.Bookings.ChangeTimeslot)
	v1.DELETE("/bookings/:id", d.Bookings.Delete)

	v1.GET("/pets", d.Pets.List)
	v1.POST("/pets", d.Pets.Create)
	v1.GET("/pets/:id", d.Pets.Get)
	v1.PUT("/pets/:id", d.Pets.Update)
	v1.DELETE("/pets/:id", d.Pets.Delete)
	v1.GET("/pets/:id/vaccinations", d.Vaccinations.ListByPet)
	v1.GET("/vaccinations", d.Vaccinations.ListMine)

	v1.GET("/notifications", d.Notifications.ListMine)
	v1.GET("/notifications/unread", d.Notifications.UnreadCountMine)
	v1.PATCH("/notifications/read-all", d.Notifications.MarkAllMineRead)
	v1.PATCH("/notifications/:id/read", d.Notifications.MarkRead)

	// Admin surface.
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))

	admin.GET("/bookings", d.Bookings.ListAll)
	admin.PATCH("/bookings/:id/status", d.Bookings.UpdateStatus)
	admin.DELETE("/bookings/:id", d.Bookings.Delete)

	admin.POST("/services", d.Services.Create)
	admin.PUT("/services/:id", d.Services.Update)
	admin.GET("/services", d.Services.List)

	admin.POST("/timeslots", d.Timeslots.Create)
	admin.PUT("/timeslots/:id", d.Timeslots.UpdateCapacity)

	admin.GET("/notifications", d.Notifications.ListAdmin)
	admin.GET("/notifications/unread", d.Notifications.UnreadCountAdmin)
	admin.PATCH("/notifications/read-all", d.Notifications.MarkAllAdminRead)

	admin.GET("/stats", d.Stats.Dashboard)

	return e
}
