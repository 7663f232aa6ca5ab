package handlers

import (
	"errors"
	"net/http"

	request "techmanaus/internal/adapter/http/dto/request"
	response "techmanaus/internal/adapter/http/dto/response"
	"techmanaus/internal/adapter/http/middleware"
	"techmanaus/internal/infrastructure/sessions"
	"techmanaus/internal/usecase"
	"techmanaus/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
	errInvalidScreen         = pkg.NewDomainErrorSimple("INVALID_SCREEN", "Unknown target screen", http.StatusBadRequest)
)

// SessionHandler translates HTTP requests into session controller operations
// and renders the resulting state back. It holds no state of its own: every
// request resolves its session through the registry.
type SessionHandler struct {
	registry *sessions.Registry
}

func NewSessionHandler(reg *sessions.Registry) *SessionHandler {
	return &SessionHandler{registry: reg}
}

// OpenSession creates a fresh session positioned at the welcome screen and
// returns the id the client must echo in the X-Session-ID header.
func (h *SessionHandler) OpenSession(c *gin.Context) {
	s := h.registry.Open()
	res := response.FromSessionState(s.UC.State(), s.Drain())
	res.SessionID = s.ID
	c.JSON(http.StatusCreated, res)
}

// CloseSession discards the caller's session entirely.
func (h *SessionHandler) CloseSession(c *gin.Context) {
	s := middleware.SessionFrom(c)
	h.registry.Close(s.ID)
	c.Status(http.StatusNoContent)
}

// State renders the current session state without mutating anything.
func (h *SessionHandler) State(c *gin.Context) {
	s := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

// Login signs the user in. Any credential pair is accepted; this is a
// simulation, not an identity check.
func (h *SessionHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s := middleware.SessionFrom(c)
	if _, err := s.UC.Login(payload.ResolveEmail(), payload.Password); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

// Register creates the session user from the supplied details.
func (h *SessionHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s := middleware.SessionFrom(c)
	if _, err := s.UC.Register(payload.ResolveName(), payload.ResolveEmail(), payload.Password); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

// Logout clears the user and every appointment, unconditionally.
func (h *SessionHandler) Logout(c *gin.Context) {
	s := middleware.SessionFrom(c)
	s.UC.Logout()
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

// Navigate performs a pure screen transition. Moving to a user-gated screen
// while logged out is a controller-level no-op, not an error.
func (h *SessionHandler) Navigate(c *gin.Context) {
	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	target, ok := payload.ResolveScreen()
	if !ok {
		c.JSON(errInvalidScreen.HTTPStatus, errInvalidScreen.ToHTTPError())
		return
	}

	s := middleware.SessionFrom(c)
	s.UC.Navigate(target)
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

// ScheduleAppointment books a support visit and moves to the confirmation
// screen with a randomly assigned roster technician.
func (h *SessionHandler) ScheduleAppointment(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s := middleware.SessionFrom(c)
	if _, err := s.UC.ScheduleAppointment(payload.Date, payload.Time, payload.Description); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	res := response.FromSessionState(s.UC.State(), s.Drain())
	c.JSON(http.StatusCreated, res)
}

// ListAppointments renders the appointment collection.
func (h *SessionHandler) ListAppointments(c *gin.Context) {
	s := middleware.SessionFrom(c)
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

// CancelAppointment removes the appointment with the path id. Cancelling an
// unknown id is a no-op by contract, so this never returns 404.
func (h *SessionHandler) CancelAppointment(c *gin.Context) {
	s := middleware.SessionFrom(c)
	s.UC.CancelAppointment(c.Param("id"))
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

// EditAppointment is the declared-but-unimplemented capability: it mutates
// nothing and only emits the "em desenvolvimento" notification.
func (h *SessionHandler) EditAppointment(c *gin.Context) {
	s := middleware.SessionFrom(c)
	s.UC.EditAppointment(c.Param("id"))
	c.JSON(http.StatusOK, response.FromSessionState(s.UC.State(), s.Drain()))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "All fields are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Date must use the YYYY-MM-DD format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDateInPast):
		return pkg.NewDomainErrorSimple("DATE_IN_PAST", "Date must not precede the current day", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotLoggedIn):
		return pkg.NewDomainErrorSimple("NOT_LOGGED_IN", "A logged-in user is required", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
