package entities

// AppointmentStatus represents the lifecycle of a support appointment.
//
// Domain notes:
//   - Appointments are created as "solicitado" and stay there: the technician-driven
//     transitions to "em_andamento" and "concluido" are a stubbed future feature,
//     so both values exist only for display purposes today.

type AppointmentStatus string

const (
	StatusSolicitado  AppointmentStatus = "solicitado"
	StatusEmAndamento AppointmentStatus = "em_andamento"
	StatusConcluido   AppointmentStatus = "concluido"
)

// Label returns the human-readable pt-BR badge text for the status.
func (s AppointmentStatus) Label() string {
	switch s {
	case StatusSolicitado:
		return "Solicitado"
	case StatusEmAndamento:
		return "Em Andamento"
	case StatusConcluido:
		return "Concluído"
	default:
		return string(s)
	}
}

// Technicians is the fixed roster used for automatic assignment. Order matters:
// the uniform picker indexes into this slice.
var Technicians = []string{"Josh Moraes", "Camila Santiago", "Enzo Daniel"}

// KnownTechnician reports whether name belongs to the roster.
func KnownTechnician(name string) bool {
	for _, t := range Technicians {
		if t == name {
			return true
		}
	}
	return false
}

// Appointment is one scheduled support request, held only in session memory.
//
// Field notes:
//   - ID is assigned at creation ("TM" + clock suffix) and never reassigned.
//   - Date is the ISO calendar date (YYYY-MM-DD) supplied by the requester.
//   - Time is the requested time of day (HH:MM), kept as the raw form value.
//   - Technician is drawn from the roster at creation and is immutable.
type Appointment struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Description string            `json:"description"`
	Technician  string            `json:"technician"`
	Status      AppointmentStatus `json:"status"`
}
