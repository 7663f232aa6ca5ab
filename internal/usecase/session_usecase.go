package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"techmanaus/internal/domain/entities"
)

var (
	ErrNotLoggedIn   = errors.New("no user logged in")
	ErrMissingFields = errors.New("all fields required")
	ErrInvalidDate   = errors.New("invalid appointment date")
	ErrDateInPast    = errors.New("appointment date in the past")
)

const appointmentDateLayout = "2006-01-02"

// ISessionUseCase exposes the session operations consumed by the view layer.
//
// The operations map onto the single-page support flow:
//   - "Entrar" / "Criar conta"          => Login() / Register()
//   - "Agendar Atendimento"             => ScheduleAppointment()
//   - "Cancelar" + "Confirmar"          => CancelAppointment()
//   - "Editar" (em desenvolvimento)     => EditAppointment()
//   - "Sair"                            => Logout()
//   - back/forward between screens      => Navigate()

type ISessionUseCase interface {
	State() SessionState
	Login(email, password string) (entities.User, error)
	Register(name, email, password string) (entities.User, error)
	ScheduleAppointment(date, timeOfDay, description string) (entities.Appointment, error)
	CancelAppointment(id string)
	EditAppointment(id string)
	Logout()
	Navigate(target entities.Screen)
}

// SessionState is a point-in-time copy of everything the view layer renders.
type SessionState struct {
	Screen            entities.Screen
	User              *entities.User
	Appointments      []entities.Appointment
	ActiveAppointment *entities.Appointment
}

// SessionUseCase is the single source of truth for one browser session: which
// screen is showing, who is logged in, and the appointment collection. All
// operations are atomic in-memory updates; none performs I/O.
//
// The clock, the technician picker and the notification sink are injected so
// tests can pin the otherwise non-deterministic outputs.
type SessionUseCase struct {
	mu           sync.Mutex
	screen       entities.Screen
	user         *entities.User
	appointments []entities.Appointment
	active       *entities.Appointment

	notify func(entities.Notification)
	now    func() time.Time
	pick   func(n int) int
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

// NewSessionUseCase wires a fresh session positioned at the welcome screen.
// Nil collaborators fall back to the real clock, a uniform random picker and a
// discarding notification sink.
func NewSessionUseCase(notify func(entities.Notification), now func() time.Time, pick func(n int) int) *SessionUseCase {
	if notify == nil {
		notify = func(entities.Notification) {}
	}
	if now == nil {
		now = time.Now
	}
	if pick == nil {
		pick = rand.Intn
	}
	return &SessionUseCase{
		screen: entities.ScreenWelcome,
		notify: notify,
		now:    now,
		pick:   pick,
	}
}

// State returns a copy of the renderable session state.
func (u *SessionUseCase) State() SessionState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot()
}

// snapshot copies state under the caller's lock.
func (u *SessionUseCase) snapshot() SessionState {
	st := SessionState{Screen: u.screen}
	if u.user != nil {
		usr := *u.user
		st.User = &usr
	}
	if u.appointments != nil {
		st.Appointments = make([]entities.Appointment, len(u.appointments))
		copy(st.Appointments, u.appointments)
	}
	if u.active != nil {
		apt := *u.active
		st.ActiveAppointment = &apt
	}
	return st
}

// Login accepts any non-empty credential pair without verification and derives
// a display name from the local part of the email.
func (u *SessionUseCase) Login(email, password string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.User{}, ErrMissingFields
	}

	usr := entities.User{Name: displayNameFromEmail(email), Email: email}

	u.mu.Lock()
	u.user = &usr
	u.screen = entities.ScreenDashboard
	u.mu.Unlock()

	u.notify(entities.Notification{
		Title:       "Login realizado com sucesso!",
		Description: fmt.Sprintf("Bem-vindo de volta, %s!", usr.Name),
	})
	return usr, nil
}

// Register creates the session user from the supplied details as-is.
func (u *SessionUseCase) Register(name, email, password string) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return entities.User{}, ErrMissingFields
	}

	usr := entities.User{Name: name, Email: email}

	u.mu.Lock()
	u.user = &usr
	u.screen = entities.ScreenDashboard
	u.mu.Unlock()

	u.notify(entities.Notification{
		Title:       "Conta criada com sucesso!",
		Description: fmt.Sprintf("Bem-vindo ao TechManaus, %s!", name),
	})
	return usr, nil
}

// ScheduleAppointment books a support visit for the logged-in user, assigns a
// roster technician uniformly at random and moves to the confirmation screen.
func (u *SessionUseCase) ScheduleAppointment(date, timeOfDay, description string) (entities.Appointment, error) {
	if date == "" || timeOfDay == "" || strings.TrimSpace(description) == "" {
		return entities.Appointment{}, ErrMissingFields
	}

	day, err := time.Parse(appointmentDateLayout, date)
	if err != nil {
		return entities.Appointment{}, ErrInvalidDate
	}

	u.mu.Lock()
	if u.user == nil {
		u.mu.Unlock()
		return entities.Appointment{}, ErrNotLoggedIn
	}

	today := u.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		u.mu.Unlock()
		return entities.Appointment{}, ErrDateInPast
	}

	apt := entities.Appointment{
		ID:          u.generateAppointmentID(),
		Date:        date,
		Time:        timeOfDay,
		Description: description,
		Technician:  entities.Technicians[u.pick(len(entities.Technicians))],
		Status:      entities.StatusSolicitado,
	}
	u.appointments = append(u.appointments, apt)
	u.active = &apt
	u.screen = entities.ScreenConfirmation
	u.mu.Unlock()

	u.notify(entities.Notification{
		Title:       "Agendamento confirmado!",
		Description: fmt.Sprintf("Técnico %s foi atribuído ao seu atendimento.", apt.Technician),
	})
	return apt, nil
}

// CancelAppointment drops the appointment with the given id. Cancelling an
// absent id is a harmless no-op: the collection is filtered, not indexed.
func (u *SessionUseCase) CancelAppointment(id string) {
	u.mu.Lock()
	kept := u.appointments[:0]
	for _, apt := range u.appointments {
		if apt.ID != id {
			kept = append(kept, apt)
		}
	}
	u.appointments = kept
	if u.active != nil && u.active.ID == id {
		u.active = nil
	}
	u.mu.Unlock()

	u.notify(entities.Notification{
		Title:       "Agendamento cancelado",
		Description: "Seu agendamento foi cancelado com sucesso.",
	})
}

// EditAppointment is a declared capability that performs no mutation yet; it
// only reports that editing is still under development.
func (u *SessionUseCase) EditAppointment(id string) {
	u.notify(entities.Notification{
		Title:       "Funcionalidade em desenvolvimento",
		Description: "A edição de agendamentos estará disponível em breve.",
	})
}

// Logout tears the session state down and returns to the welcome screen. The
// appointment collection does not survive the user that created it.
func (u *SessionUseCase) Logout() {
	u.mu.Lock()
	u.user = nil
	u.appointments = nil
	u.active = nil
	u.screen = entities.ScreenWelcome
	u.mu.Unlock()

	u.notify(entities.Notification{
		Title:       "Logout realizado",
		Description: "Até logo!",
	})
}

// Navigate performs a pure screen transition. Moving to a screen that requires
// a user is ignored while nobody is logged in; invalid screens are ignored.
func (u *SessionUseCase) Navigate(target entities.Screen) {
	if !target.Valid() {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if target.RequiresUser() && u.user == nil {
		return
	}
	u.screen = target
}

// generateAppointmentID derives the id from the millisecond clock: "TM" plus
// the last six digits. Collisions within one session would need two bookings
// in the same millisecond, which is accepted as negligible. Caller holds the lock.
func (u *SessionUseCase) generateAppointmentID() string {
	ms := fmt.Sprintf("%d", u.now().UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "TM" + ms
}

// displayNameFromEmail capitalizes the local part of the email address.
func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return local
	}
	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
