package store

import (
	"context"

	"github.com/listenupapp/nameflags/internal/domain"
)

const flagCreatedIndex = "created"

func (s *Store) initFlags() {
	s.Flags = NewEntity[domain.Flag](s, flagPrefix).
		WithIndex(flagCreatedIndex, func(f *domain.Flag) []string {
			return []string{sortableTimestamp(f.CreatedAt) + ":" + f.ID}
		})
}

// CreateFlag persists a saved flag. The ID must already be set.
func (s *Store) CreateFlag(ctx context.Context, f *domain.Flag) error {
	if err := s.Flags.Create(ctx, f.ID, f); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Debug("flag saved", "id", f.ID, "words", f.Stats.WordCount)
	}
	return nil
}

// GetFlag returns a saved flag or ErrNotFound.
func (s *Store) GetFlag(ctx context.Context, id string) (*domain.Flag, error) {
	return s.Flags.Get(ctx, id)
}

// DeleteFlag removes a saved flag or returns ErrNotFound.
func (s *Store) DeleteFlag(ctx context.Context, id string) error {
	return s.Flags.Delete(ctx, id)
}

// ListFlags returns saved flags, newest first.
func (s *Store) ListFlags(ctx context.Context, params PaginationParams) (*PaginatedResult[*domain.Flag], error) {
	return s.Flags.PageByIndex(ctx, flagCreatedIndex, params)
}
