package request

import (
	"strings"

	"techmanaus/internal/domain/entities"
)

// LoginRequest carries the raw credential pair from the login form. Nothing is
// verified server-side; the fields only have to be present.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r RegisterRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r RegisterRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

// ScheduleRequest carries the support request form. Date and time keep the raw
// form values (YYYY-MM-DD and HH:MM); validation beyond presence and the
// not-in-the-past rule belongs to the session controller.
type ScheduleRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// NavigateRequest names the target screen for a pure navigation.
type NavigateRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// ResolveScreen maps the raw value onto the closed screen set.
func (r NavigateRequest) ResolveScreen() (entities.Screen, bool) {
	return entities.ParseScreen(strings.TrimSpace(r.Screen))
}
