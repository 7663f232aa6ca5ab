package response

import (
	"techmanaus/internal/domain/entities"
	"techmanaus/internal/usecase"
)

type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AppointmentResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Technician  string `json:"technician"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

type NotificationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SessionStateResponse is the full renderable state returned by every session
// endpoint, plus the transient notifications the operation emitted.
type SessionStateResponse struct {
	SessionID         string                 `json:"session_id,omitempty"`
	Screen            string                 `json:"screen"`
	User              *UserResponse          `json:"user,omitempty"`
	Appointments      []AppointmentResponse  `json:"appointments"`
	ActiveAppointment *AppointmentResponse   `json:"active_appointment,omitempty"`
	Notifications     []NotificationResponse `json:"notifications"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		Date:        a.Date,
		Time:        a.Time,
		Description: a.Description,
		Technician:  a.Technician,
		Status:      string(a.Status),
		StatusLabel: a.Status.Label(),
	}
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{Title: n.Title, Description: n.Description}
}

// FromSessionState maps the controller snapshot and any drained notifications
// into the wire shape. Appointments is always a JSON array, never null.
func FromSessionState(st usecase.SessionState, notes []entities.Notification) SessionStateResponse {
	res := SessionStateResponse{
		Screen:        string(st.Screen),
		Appointments:  make([]AppointmentResponse, 0, len(st.Appointments)),
		Notifications: make([]NotificationResponse, 0, len(notes)),
	}
	if st.User != nil {
		res.User = &UserResponse{Name: st.User.Name, Email: st.User.Email}
	}
	for _, apt := range st.Appointments {
		res.Appointments = append(res.Appointments, FromAppointment(apt))
	}
	if st.ActiveAppointment != nil {
		apt := FromAppointment(*st.ActiveAppointment)
		res.ActiveAppointment = &apt
	}
	for _, n := range notes {
		res.Notifications = append(res.Notifications, FromNotification(n))
	}
	return res
}
