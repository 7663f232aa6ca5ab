package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"techmanaus/internal/adapter/http/handlers/mocks"
	"techmanaus/internal/adapter/http/middleware"
	"techmanaus/internal/domain/entities"
	"techmanaus/internal/infrastructure/sessions"
	"techmanaus/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRouter(reg *sessions.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSessionHandler(reg)

	r := gin.New()
	v1 := r.Group("/v1")
	v1.POST("/sessions", h.OpenSession)

	authed := v1.Group("", middleware.RequireSession(reg))
	authed.DELETE("/sessions", h.CloseSession)
	authed.GET("/sessions/state", h.State)
	authed.POST("/sessions/login", h.Login)
	authed.POST("/sessions/register", h.Register)
	authed.POST("/sessions/logout", h.Logout)
	authed.POST("/sessions/navigate", h.Navigate)
	authed.POST("/appointments", h.ScheduleAppointment)
	authed.GET("/appointments", h.ListAppointments)
	authed.PATCH("/appointments/:id", h.EditAppointment)
	authed.DELETE("/appointments/:id", h.CancelAppointment)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return res
}

func TestSessionHandler_OpenSession(t *testing.T) {
	reg := sessions.NewRegistry(nil, 0)
	r := newRouter(reg)

	w := doJSON(t, r, http.MethodPost, "/v1/sessions", "", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	res := decodeState(t, w)
	if res["session_id"] == "" || res["session_id"] == nil {
		t.Fatalf("missing session_id in %v", res)
	}
	if res["screen"] != "welcome" {
		t.Fatalf("new sessions must start at welcome, got %v", res["screen"])
	}
}

func TestSessionHandler_SessionAffinity(t *testing.T) {
	reg := sessions.NewRegistry(nil, 0)
	r := newRouter(reg)

	t.Run("missing header", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/v1/sessions/state", "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/v1/sessions/state", "nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if reg.Len() != 0 {
			t.Fatal("unknown ids must not create sessions")
		}
	})
}

func TestSessionHandler_Login(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		reg := sessions.NewRegistry(nil, 0)
		r := newRouter(reg)
		s := reg.Open()

		w := doJSON(t, r, http.MethodPost, "/v1/sessions/login", s.ID, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		reg := sessions.NewRegistry(nil, 0)
		r := newRouter(reg)
		s := reg.Open()

		w := doJSON(t, r, http.MethodPost, "/v1/sessions/login", s.ID, `{"email":"a@b.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("happy path renders dashboard and toast", func(t *testing.T) {
		reg := sessions.NewRegistry(nil, 0)
		r := newRouter(reg)
		s := reg.Open()

		w := doJSON(t, r, http.MethodPost, "/v1/sessions/login", s.ID, `{"email":"alice@example.com","password":"pw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		res := decodeState(t, w)
		if res["screen"] != "dashboard" {
			t.Fatalf("expected dashboard, got %v", res["screen"])
		}
		user := res["user"].(map[string]any)
		if user["name"] != "Alice" || user["email"] != "alice@example.com" {
			t.Fatalf("unexpected user %v", user)
		}
		notes := res["notifications"].([]any)
		if len(notes) != 1 {
			t.Fatalf("expected one toast, got %v", notes)
		}
	})
}

func TestSessionHandler_ScheduleAppointment(t *testing.T) {
	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"past date", usecase.ErrDateInPast, http.StatusBadRequest},
			{"bad date format", usecase.ErrInvalidDate, http.StatusBadRequest},
			{"not logged in", usecase.ErrNotLoggedIn, http.StatusUnauthorized},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockISessionUseCase(ctrl)
				reg := sessions.NewRegistry(func(func(entities.Notification)) usecase.ISessionUseCase { return uc }, 0)
				r := newRouter(reg)
				s := reg.Open()

				uc.EXPECT().ScheduleAppointment("2020-01-01", "10:00", "x").Return(entities.Appointment{}, tc.err)

				w := doJSON(t, r, http.MethodPost, "/v1/appointments", s.ID, `{"date":"2020-01-01","time":"10:00","description":"x"}`)
				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
				}
			})
		}
	})

	t.Run("happy path", func(t *testing.T) {
		reg := sessions.NewRegistry(nil, 0)
		r := newRouter(reg)
		s := reg.Open()
		doJSON(t, r, http.MethodPost, "/v1/sessions/login", s.ID, `{"email":"alice@example.com","password":"pw"}`)

		w := doJSON(t, r, http.MethodPost, "/v1/appointments", s.ID, `{"date":"2099-01-01","time":"10:00","description":"printer broken"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		res := decodeState(t, w)
		if res["screen"] != "confirmation" {
			t.Fatalf("expected confirmation, got %v", res["screen"])
		}
		active := res["active_appointment"].(map[string]any)
		if active["status"] != "solicitado" || active["status_label"] != "Solicitado" {
			t.Fatalf("unexpected active appointment %v", active)
		}
		if !entities.KnownTechnician(active["technician"].(string)) {
			t.Fatalf("technician %v not in roster", active["technician"])
		}
	})
}

func TestSessionHandler_CancelAndEdit(t *testing.T) {
	reg := sessions.NewRegistry(nil, 0)
	r := newRouter(reg)
	s := reg.Open()
	doJSON(t, r, http.MethodPost, "/v1/sessions/login", s.ID, `{"email":"alice@example.com","password":"pw"}`)
	w := doJSON(t, r, http.MethodPost, "/v1/appointments", s.ID, `{"date":"2099-01-01","time":"10:00","description":"x"}`)
	active := decodeState(t, w)["active_appointment"].(map[string]any)
	id := active["id"].(string)

	t.Run("edit only emits the development toast", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/v1/appointments/"+id, s.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		res := decodeState(t, w)
		notes := res["notifications"].([]any)
		if len(notes) != 1 || notes[0].(map[string]any)["title"] != "Funcionalidade em desenvolvimento" {
			t.Fatalf("unexpected notifications %v", notes)
		}
		if len(res["appointments"].([]any)) != 1 {
			t.Fatal("edit must not mutate the collection")
		}
	})

	t.Run("cancel removes the record, repeat is a no-op", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/v1/appointments/"+id, s.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if res := decodeState(t, w); len(res["appointments"].([]any)) != 0 {
			t.Fatalf("expected empty collection, got %v", res["appointments"])
		}

		w = doJSON(t, r, http.MethodDelete, "/v1/appointments/"+id, s.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("cancel must stay a no-op, got %d", w.Code)
		}
	})
}

func TestSessionHandler_Navigate(t *testing.T) {
	t.Run("unknown screen", func(t *testing.T) {
		reg := sessions.NewRegistry(nil, 0)
		r := newRouter(reg)
		s := reg.Open()

		w := doJSON(t, r, http.MethodPost, "/v1/sessions/navigate", s.ID, `{"screen":"settings"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gated screen without user is a no-op", func(t *testing.T) {
		reg := sessions.NewRegistry(nil, 0)
		r := newRouter(reg)
		s := reg.Open()

		w := doJSON(t, r, http.MethodPost, "/v1/sessions/navigate", s.ID, `{"screen":"dashboard"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if res := decodeState(t, w); res["screen"] != "welcome" {
			t.Fatalf("guard failed: %v", res["screen"])
		}
	})
}

func TestSessionHandler_LogoutAndClose(t *testing.T) {
	reg := sessions.NewRegistry(nil, 0)
	r := newRouter(reg)
	s := reg.Open()
	doJSON(t, r, http.MethodPost, "/v1/sessions/login", s.ID, `{"email":"alice@example.com","password":"pw"}`)
	doJSON(t, r, http.MethodPost, "/v1/appointments", s.ID, `{"date":"2099-01-01","time":"10:00","description":"x"}`)

	w := doJSON(t, r, http.MethodPost, "/v1/sessions/logout", s.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	res := decodeState(t, w)
	if res["screen"] != "welcome" || res["user"] != nil {
		t.Fatalf("unexpected state after logout: %v", res)
	}
	if len(res["appointments"].([]any)) != 0 {
		t.Fatal("appointments must be discarded on logout")
	}

	w = doJSON(t, r, http.MethodDelete, "/v1/sessions", s.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/v1/sessions/state", s.ID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("closed session must be gone, got %d", w.Code)
	}
}
