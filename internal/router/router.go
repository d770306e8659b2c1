// Package router defines how HTTP routes are registered for the API.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-reservation/internal/handler"
    "github.com/iliyamo/restaurant-reservation/internal/middleware"
)

// RegisterPublic registers the unauthenticated surface: the health
// check, the reservation submission endpoint and the menu browse
// endpoints.  rateLimit guards the booking form against abuse and
// cache fronts the read-only menu; either may be a pass-through when
// redis is unavailable.
func RegisterPublic(e *echo.Echo, r *handler.ReservationHandler, m *handler.MenuHandler, rateLimit, cache echo.MiddlewareFunc) {
    // Liveness probe for load balancers and monitoring.
    e.GET("/healthz", handler.Health)

    // The public booking form posts here.  Guests do not log in, so
    // the only guard is the rate limiter.
    e.POST("/v1/reservations", r.Create, rateLimit)

    // Menu content changes only when an admin edits it, which makes
    // it a natural fit for the response cache.
    e.GET("/v1/menu", m.GetMenu, cache)
    e.GET("/v1/addons", m.GetAddOns, cache)
}

// RegisterAuth registers the admin login endpoints.  Only /me sits
// behind the session gate; the rest exchange or revoke tokens and
// must therefore remain reachable without one.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, gate echo.MiddlewareFunc) {
    g := e.Group("/v1/auth")
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh)
    g.POST("/refresh-access", a.RefreshAccess)
    g.POST("/logout", a.Logout)

    e.GET("/v1/admin/me", a.Me, gate, middleware.RequireRole("ADMIN"))
}

// RegisterAdmin registers the protected admin panel API under
// /v1/admin.  Every route runs the session gate and the ADMIN role
// check before its handler.
func RegisterAdmin(e *echo.Echo, res *handler.AdminReservationHandler, menu *handler.AdminMenuHandler, up *handler.UploadHandler, gate echo.MiddlewareFunc) {
    g := e.Group("/v1/admin")
    g.Use(gate)
    g.Use(middleware.RequireRole("ADMIN"))

    g.GET("/reservations", res.List)
    g.GET("/reservations/:id", res.Get)
    g.PATCH("/reservations/:id/status", res.UpdateStatus)
    g.DELETE("/reservations/:id", res.Delete)

    g.GET("/menu-items", menu.ListItems)
    g.POST("/menu-items", menu.CreateItem)
    g.PUT("/menu-items/:id", menu.UpdateItem)
    g.DELETE("/menu-items/:id", menu.DeleteItem)

    g.POST("/addons", menu.CreateAddOn)
    g.PUT("/addons/:id", menu.UpdateAddOn)
    g.DELETE("/addons/:id", menu.DeleteAddOn)

    g.POST("/uploads", up.Upload)
}
