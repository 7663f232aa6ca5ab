package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techmanaus/internal/infrastructure/sessions"
	"techmanaus/pkg"
)

// SessionHeader carries the opaque session id handed out by POST /sessions.
const SessionHeader = "X-Session-ID"

const sessionContextKey = "session"

var (
	errSessionRequired = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Missing "+SessionHeader+" header", http.StatusBadRequest)
	errSessionNotFound = pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found or expired", http.StatusNotFound)
)

// RequireSession resolves the caller's session and aborts when it is missing.
// Resolving also refreshes the session's idle timer.
func RequireSession(reg *sessions.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			c.AbortWithStatusJSON(errSessionRequired.HTTPStatus, errSessionRequired.ToHTTPError())
			return
		}
		s, ok := reg.Get(id)
		if !ok {
			c.AbortWithStatusJSON(errSessionNotFound.HTTPStatus, errSessionNotFound.ToHTTPError())
			return
		}
		c.Set(sessionContextKey, s)
		c.Next()
	}
}

// SessionFrom returns the session placed on the context by RequireSession.
func SessionFrom(c *gin.Context) *sessions.Session {
	s, _ := c.MustGet(sessionContextKey).(*sessions.Session)
	return s
}
