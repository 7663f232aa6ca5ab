package sessions

import (
	"testing"
	"time"

	"techmanaus/internal/domain/entities"
)

func TestRegistry_OpenGetClose(t *testing.T) {
	r := NewRegistry(nil, 0)

	s := r.Open()
	if s.ID == "" {
		t.Fatal("session id must be assigned")
	}
	if s.UC.State().Screen != entities.ScreenWelcome {
		t.Fatal("new sessions must start at the welcome screen")
	}

	got, ok := r.Get(s.ID)
	if !ok || got != s {
		t.Fatalf("Get(%q) = (%v, %v)", s.ID, got, ok)
	}
	if _, ok := r.Get("nope"); ok {
		t.Fatal("unknown ids must not resolve")
	}

	r.Close(s.ID)
	if _, ok := r.Get(s.ID); ok {
		t.Fatal("closed sessions must be gone")
	}
	r.Close(s.ID) // no-op
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r := NewRegistry(nil, 0)
	a := r.Open()
	b := r.Open()

	if _, err := a.UC.Login("a@x.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := a.UC.ScheduleAppointment("2099-01-01", "10:00", "x"); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if st := b.UC.State(); st.User != nil || len(st.Appointments) != 0 {
		t.Fatalf("state leaked between sessions: %+v", st)
	}
}

func TestSession_NotificationsDrainOnce(t *testing.T) {
	r := NewRegistry(nil, 0)
	s := r.Open()

	if _, err := s.UC.Login("a@x.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	notes := s.Drain()
	if len(notes) != 1 || notes[0].Title != "Login realizado com sucesso!" {
		t.Fatalf("unexpected notifications %+v", notes)
	}
	if again := s.Drain(); len(again) != 0 {
		t.Fatalf("drained notifications must be discarded, got %+v", again)
	}
}

func TestRegistry_Prune(t *testing.T) {
	r := NewRegistry(nil, 10*time.Minute)
	fresh := r.Open()
	stale := r.Open()
	stale.touch(time.Now().Add(-time.Hour))

	if removed := r.Prune(time.Now()); removed != 1 {
		t.Fatalf("expected 1 pruned session, got %d", removed)
	}
	if _, ok := r.Get(fresh.ID); !ok {
		t.Fatal("fresh session must survive the sweep")
	}
	if _, ok := r.Get(stale.ID); ok {
		t.Fatal("stale session must be swept")
	}
}
