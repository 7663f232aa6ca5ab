package entities

// Screen represents one UI state of the single-page support flow.
//
// Domain notes:
//   - Exactly one screen is active per session at any time.
//   - The session always starts at ScreenWelcome and returns to it on logout.
//   - New screens are added here and in the navigation table of the session
//     use case, never by open-ended string dispatch.

type Screen string

const (
	ScreenWelcome      Screen = "welcome"
	ScreenLogin        Screen = "login"
	ScreenRegister     Screen = "register"
	ScreenDashboard    Screen = "dashboard"
	ScreenSchedule     Screen = "schedule"
	ScreenConfirmation Screen = "confirmation"
	ScreenAppointments Screen = "appointments"
)

// ParseScreen maps a raw string onto the closed Screen set.
func ParseScreen(raw string) (Screen, bool) {
	s := Screen(raw)
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Valid reports whether the screen belongs to the closed set.
func (s Screen) Valid() bool {
	switch s {
	case ScreenWelcome, ScreenLogin, ScreenRegister, ScreenDashboard,
		ScreenSchedule, ScreenConfirmation, ScreenAppointments:
		return true
	}
	return false
}

// RequiresUser reports whether the screen may only be shown to a logged-in user.
func (s Screen) RequiresUser() bool {
	switch s {
	case ScreenDashboard, ScreenSchedule, ScreenConfirmation, ScreenAppointments:
		return true
	}
	return false
}
