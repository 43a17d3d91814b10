package roster

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=roster
type Repository interface {
	CreateFriend(ctx context.Context, f *Friend) error
	GetFriend(ctx context.Context, id uuid.UUID) (*Friend, error)
	ListFriends(ctx context.Context) ([]*Friend, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, delta int64) (*Friend, error)
}

// Service holds the ordered friend collection and the current selection.
type Service struct {
	repo Repository

	mu       sync.Mutex
	selected *uuid.UUID
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add appends a friend to the end of the roster.
func (s *Service) Add(ctx context.Context, f *Friend) error {
	if f == nil || f.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}

	if err := s.repo.CreateFriend(ctx, f); err != nil {
		return fmt.Errorf("adding friend: %w", err)
	}

	return nil
}

func (s *Service) List(ctx context.Context) ([]*Friend, error) {
	return s.repo.ListFriends(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Friend, error) {
	return s.repo.GetFriend(ctx, id)
}

// Select toggles the selection. Selecting the currently selected friend clears the
// selection and returns nil; otherwise the newly selected friend is returned.
func (s *Service) Select(ctx context.Context, id uuid.UUID) (*Friend, error) {
	f, err := s.repo.GetFriend(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("selecting friend: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil && *s.selected == id {
		s.selected = nil
		return nil, nil
	}

	selected := f.ID
	s.selected = &selected

	return f, nil
}

// Selected returns the selected friend, or nil when nothing is selected.
func (s *Service) Selected(ctx context.Context) (*Friend, error) {
	s.mu.Lock()
	id := s.selected
	s.mu.Unlock()

	if id == nil {
		return nil, nil
	}

	return s.repo.GetFriend(ctx, *id)
}

func (s *Service) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// ApplyBillSplit adds delta to the selected friend's balance and clears the selection.
func (s *Service) ApplyBillSplit(ctx context.Context, delta int64) (*Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil, ErrNoSelection
	}

	f, err := s.repo.UpdateBalance(ctx, *s.selected, delta)
	if err != nil {
		return nil, fmt.Errorf("applying bill split: %w", err)
	}

	s.selected = nil

	return f, nil
}
