package friend

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/form"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
	"github.com/MrJamesThe3rd/splitty/internal/session"
)

type Handler struct {
	session      *session.Session
	defaultImage string
}

func NewHandler(s *session.Session, defaultImage string) *Handler {
	return &Handler{session: s, defaultImage: defaultImage}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Post("/{id}/select", h.toggleSelect)
}

// Image is a pointer so an omitted field falls back to the default avatar
// while an explicitly empty one is rejected like in the form.
type createFriendRequest struct {
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(state.Friends))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := form.NewAddFriend(h.defaultImage)
	f.Name = req.Name

	if req.Image != nil {
		f.Image = *req.Image
	}

	friend, err := h.session.AddFriend(r.Context(), f)
	if err != nil {
		if errors.Is(err, form.ErrNameRequired) || errors.Is(err, form.ErrAvatarRequired) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(friend))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	state, err := h.session.State(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	for _, f := range state.Friends {
		if f.ID == id {
			writeJSON(w, http.StatusOK, toResponse(f))
			return
		}
	}

	http.Error(w, "friend not found", http.StatusNotFound)
}

func (h *Handler) toggleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	selected, err := h.session.Select(r.Context(), id)
	if err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			http.Error(w, "friend not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := selectResponse{}
	if selected != nil {
		fr := toResponse(selected)
		resp.Selected = &fr
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
