package session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/money"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
	"github.com/MrJamesThe3rd/splitty/internal/session"
)

type Handler struct {
	session *session.Session
}

func NewHandler(s *session.Session) *Handler {
	return &Handler{session: s}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/state", h.state)
	r.Post("/add-form/toggle", h.toggleAddForm)
}

type friendView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Balance  string    `json:"balance"`
	Summary  string    `json:"summary"`
	Selected bool      `json:"selected"`
}

type stateResponse struct {
	Mode        session.Mode `json:"mode"`
	AddFormOpen bool         `json:"add_form_open"`
	SelectedID  *uuid.UUID   `json:"selected_id,omitempty"`
	Friends     []friendView `json:"friends"`
}

func toStateResponse(st session.State) stateResponse {
	resp := stateResponse{
		Mode:        st.Mode(),
		AddFormOpen: st.AddFormOpen,
		Friends:     make([]friendView, len(st.Friends)),
	}

	if st.Selected != nil {
		resp.SelectedID = &st.Selected.ID
	}

	for i, f := range st.Friends {
		resp.Friends[i] = toFriendView(f, st.Selected)
	}

	return resp
}

func toFriendView(f, selected *roster.Friend) friendView {
	return friendView{
		ID:       f.ID,
		Name:     f.Name,
		Image:    f.Image,
		Balance:  money.Format(f.Balance),
		Summary:  f.Describe(),
		Selected: selected != nil && selected.ID == f.ID,
	}
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	st, err := h.session.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStateResponse(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type toggleResponse struct {
	AddFormOpen bool `json:"add_form_open"`
}

func (h *Handler) toggleAddForm(w http.ResponseWriter, _ *http.Request) {
	open := h.session.ToggleAddForm()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toggleResponse{AddFormOpen: open}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
