package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/form"
	"github.com/MrJamesThe3rd/splitty/internal/metrics"
	"github.com/MrJamesThe3rd/splitty/internal/money"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
)

// Mode is the visible combination of panes.
type Mode string

const (
	ModeList        Mode = "list"
	ModeAddFriend   Mode = "add_friend"
	ModeSplitBill   Mode = "split_bill"
	ModeAddAndSplit Mode = "add_friend_and_split_bill"
)

// State is a snapshot of everything the UI renders.
type State struct {
	Friends     []*roster.Friend
	Selected    *roster.Friend
	AddFormOpen bool
}

func (s State) Mode() Mode {
	switch {
	case s.AddFormOpen && s.Selected != nil:
		return ModeAddAndSplit
	case s.AddFormOpen:
		return ModeAddFriend
	case s.Selected != nil:
		return ModeSplitBill
	}

	return ModeList
}

// Session is the top-level controller: it owns the add-form flag and drives the roster.
type Session struct {
	roster *roster.Service

	mu          sync.Mutex
	addFormOpen bool
}

func New(svc *roster.Service) *Session {
	return &Session{roster: svc}
}

// Seed adds initial friends as-is, keeping their ids and balances.
func (s *Session) Seed(ctx context.Context, friends []*roster.Friend) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range friends {
		if err := s.roster.Add(ctx, f); err != nil {
			return fmt.Errorf("seeding %q: %w", f.Name, err)
		}

		metrics.RosterSize.Inc()
	}

	return nil
}

// ToggleAddForm opens or closes the add-friend form and reports whether it is now open.
func (s *Session) ToggleAddForm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addFormOpen = !s.addFormOpen

	return s.addFormOpen
}

func (s *Session) CloseAddForm() {
	s.mu.Lock()
	s.addFormOpen = false
	s.mu.Unlock()
}

func (s *Session) AddFormOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addFormOpen
}

// AddFriend submits the add-friend form. On success the friend is appended, the form is
// reset and closed. On a validation error nothing changes.
func (s *Session) AddFriend(ctx context.Context, f *form.AddFriend) (*roster.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	friend, err := f.Build()
	if err != nil {
		metrics.Rejections.WithLabelValues("add_friend").Inc()
		return nil, err
	}

	if err := s.roster.Add(ctx, friend); err != nil {
		return nil, err
	}

	f.Reset()
	s.addFormOpen = false

	metrics.FriendsAdded.Inc()
	metrics.RosterSize.Inc()
	slog.Debug("friend added", "id", friend.ID, "name", friend.Name)

	return friend, nil
}

// Select toggles the selection of a friend and forces the add-friend form closed.
// It returns the selected friend, or nil when the selection was cleared.
func (s *Session) Select(ctx context.Context, id uuid.UUID) (*roster.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.roster.Select(ctx, id)
	if err != nil {
		return nil, err
	}

	s.addFormOpen = false

	return f, nil
}

// SplitBill applies the split-bill form to the selected friend and closes the split form.
func (s *Session) SplitBill(ctx context.Context, f *form.SplitBill) (*roster.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta, err := f.Delta()
	if err != nil {
		metrics.Rejections.WithLabelValues("split_bill").Inc()
		return nil, err
	}

	friend, err := s.roster.ApplyBillSplit(ctx, delta)
	if err != nil {
		if errors.Is(err, roster.ErrNoSelection) {
			metrics.Rejections.WithLabelValues("split_bill").Inc()
		}

		return nil, err
	}

	metrics.BillsSplit.WithLabelValues(string(f.Payer())).Inc()
	slog.Debug("bill split", "friend", friend.ID, "delta", delta, "balance", friend.Balance)

	return friend, nil
}

func (s *Session) State(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	friends, err := s.roster.List(ctx)
	if err != nil {
		return State{}, fmt.Errorf("listing friends: %w", err)
	}

	selected, err := s.roster.Selected(ctx)
	if err != nil {
		return State{}, fmt.Errorf("loading selection: %w", err)
	}

	return State{
		Friends:     friends,
		Selected:    selected,
		AddFormOpen: s.addFormOpen,
	}, nil
}

// Summary renders one line per friend with their balance phrase.
func (s *Session) Summary(ctx context.Context) (string, error) {
	friends, err := s.roster.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing friends: %w", err)
	}

	var sb strings.Builder

	var net int64

	for _, f := range friends {
		net += f.Balance
		sb.WriteString(fmt.Sprintf("* %s | %s\n", f.Name, f.Describe()))
	}

	sb.WriteString(fmt.Sprintf("Net: %s\n", money.Format(net)))

	return sb.String(), nil
}
