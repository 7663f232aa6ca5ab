package routes

import (
	"techmanaus/internal/adapter/http/handlers"
	"techmanaus/internal/adapter/http/middleware"
	"techmanaus/internal/infrastructure/sessions"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions     = "/sessions"
	PathAppointments = "/appointments"
)

func addSessionRoutes(rg *gin.RouterGroup, registry *sessions.Registry, h *handlers.SessionHandler, limiter *middleware.RateLimiter) {
	// Opening a session is the only call that does not need the session header.
	rg.POST(PathSessions, h.OpenSession)

	authed := rg.Group("", middleware.RequireSession(registry))

	session := authed.Group(PathSessions)
	{
		session.DELETE("", h.CloseSession)
		session.GET("/state", h.State)
		session.POST("/login", middleware.RateLimit(limiter), h.Login)
		session.POST("/register", middleware.RateLimit(limiter), h.Register)
		session.POST("/logout", h.Logout)
		session.POST("/navigate", h.Navigate)
	}

	appointments := authed.Group(PathAppointments)
	{
		appointments.POST("", h.ScheduleAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.PATCH("/:id", h.EditAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
	}
}
