package threads

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vander-supa3/academia-nutricional/pkg/assistant"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
)

// Service resolves the assistant thread for a user, creating one lazily on
// first use.
type Service struct {
	repo     *Repository
	provider assistant.Provider
	log      *slog.Logger
}

// NewService creates a new thread service
func NewService(repo *Repository, provider assistant.Provider, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		log:      log.With(logger.Scope("threads")),
	}
}

// Resolve returns the user's thread id. If no binding exists, a remote
// thread is created and persisted. If persistence fails after remote
// creation the call fails and the remote thread is leaked; it is never
// retried or garbage-collected.
func (s *Service) Resolve(ctx context.Context, userID string) (string, error) {
	existing, err := s.repo.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ThreadID, nil
	}

	threadID, err := s.provider.CreateThread(ctx)
	if err != nil {
		return "", fmt.Errorf("create remote thread: %w", err)
	}

	if err := s.repo.Upsert(ctx, userID, threadID); err != nil {
		s.log.Error("thread created remotely but binding not persisted",
			slog.String("user_id", userID),
			slog.String("thread_id", threadID),
		)
		return "", err
	}

	s.log.Info("thread bound",
		slog.String("user_id", userID),
		slog.String("thread_id", threadID),
	)
	return threadID, nil
}
