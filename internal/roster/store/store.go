package store

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/splitty/internal/roster"
)

var _ roster.Repository = (*Store)(nil)

// Store keeps friends in memory in insertion order. Values handed out are copies.
type Store struct {
	mu      sync.RWMutex
	friends []*roster.Friend
	index   map[uuid.UUID]int
}

func New() *Store {
	return &Store{index: make(map[uuid.UUID]int)}
}

func (s *Store) CreateFriend(ctx context.Context, f *roster.Friend) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[f.ID]; ok {
		return fmt.Errorf("creating friend %s: %w", f.ID, roster.ErrDuplicateID)
	}

	stored := *f
	s.index[f.ID] = len(s.friends)
	s.friends = append(s.friends, &stored)

	return nil
}

func (s *Store) GetFriend(ctx context.Context, id uuid.UUID) (*roster.Friend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[id]
	if !ok {
		return nil, roster.ErrNotFound
	}

	f := *s.friends[idx]

	return &f, nil
}

func (s *Store) ListFriends(ctx context.Context) ([]*roster.Friend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*roster.Friend, len(s.friends))
	for i, f := range s.friends {
		c := *f
		out[i] = &c
	}

	return out, nil
}

func (s *Store) UpdateBalance(ctx context.Context, id uuid.UUID, delta int64) (*roster.Friend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return nil, roster.ErrNotFound
	}

	balance := s.friends[idx].Balance
	if delta > 0 && balance > math.MaxInt64-delta || delta < 0 && balance < math.MinInt64-delta {
		return nil, roster.ErrOverflow
	}

	s.friends[idx].Balance = balance + delta
	f := *s.friends[idx]

	return &f, nil
}
