package bill

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/form"
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
	r.Post("/", h.split)
	r.Post("/preview", h.preview)
}

// Amounts travel as decimal strings ("100", "12.50").
type splitRequest struct {
	Total      string `json:"total"`
	PaidByUser string `json:"paid_by_user"`
	Payer      string `json:"payer"`
}

type splitResponse struct {
	FriendID uuid.UUID `json:"friend_id"`
	Name     string    `json:"name"`
	Delta    string    `json:"delta"`
	Balance  string    `json:"balance"`
	Summary  string    `json:"summary"`
}

type previewResponse struct {
	Total       string     `json:"total"`
	PaidByUser  string     `json:"paid_by_user"`
	FriendShare string     `json:"friend_share"`
	Payer       form.Payer `json:"payer"`
	Delta       string     `json:"delta"`
}

func (r splitRequest) toForm() (*form.SplitBill, error) {
	payer, err := form.ParsePayer(r.Payer)
	if err != nil {
		return nil, err
	}

	f := form.NewSplitBill()
	if err := f.SetTotalText(r.Total); err != nil {
		return nil, err
	}

	if err := f.SetPaidByUserText(r.PaidByUser); err != nil {
		return nil, err
	}

	if err := f.SetPayer(payer); err != nil {
		return nil, err
	}

	return f, nil
}

func (h *Handler) split(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeForm(w, r)
	if !ok {
		return
	}

	friend, err := h.session.SplitBill(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	// SplitBill already validated the form.
	delta, _ := f.Delta()

	writeJSON(w, http.StatusOK, splitResponse{
		FriendID: friend.ID,
		Name:     friend.Name,
		Delta:    money.Format(delta),
		Balance:  money.Format(friend.Balance),
		Summary:  friend.Describe(),
	})
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeForm(w, r)
	if !ok {
		return
	}

	delta, err := f.Delta()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, previewResponse{
		Total:       money.Format(f.Total()),
		PaidByUser:  money.Format(f.PaidByUser()),
		FriendShare: money.Format(f.FriendShare()),
		Payer:       f.Payer(),
		Delta:       money.Format(delta),
	})
}

func decodeForm(w http.ResponseWriter, r *http.Request) (*form.SplitBill, bool) {
	var req splitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	f, err := req.toForm()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return nil, false
	}

	return f, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, roster.ErrNoSelection):
		return http.StatusConflict
	case errors.Is(err, roster.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, form.ErrTotalRequired),
		errors.Is(err, form.ErrPaidRequired),
		errors.Is(err, form.ErrPaidExceedsTotal),
		errors.Is(err, form.ErrUnknownPayer),
		errors.Is(err, roster.ErrOverflow),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrNegativeAmount):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
