package usecase

import (
	"context"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/logger"
)

// UserStatsWorker keeps metadata/userStats in step with the users
// collection by recounting every user on each snapshot. The write is not
// atomic with the change that triggered it.
type UserStatsWorker struct {
	userRepo repository.UserRepository
	onWrite  func(entity.UserStats)
}

func NewUserStatsWorker(userRepo repository.UserRepository) *UserStatsWorker {
	return &UserStatsWorker{
		userRepo: userRepo,
	}
}

// Start listens until ctx is cancelled. A listener error stops the worker.
func (w *UserStatsWorker) Start(ctx context.Context) {
	logger.Info("user stats worker started")

	failed := make(chan struct{})
	unsubscribe := w.userRepo.Listen(ctx, func(users []*entity.User) {
		stats := entity.CountUserStats(users)
		if err := w.userRepo.SaveStats(ctx, stats); err != nil {
			logger.Err(err, "writing user stats")
			return
		}
		logger.Debug("user stats updated: %+v", stats)
		if w.onWrite != nil {
			w.onWrite(stats)
		}
	}, func(err error) {
		logger.Err(err, "user stats listener stopped")
		close(failed)
	})
	defer unsubscribe()

	select {
	case <-ctx.Done():
	case <-failed:
	}
	logger.Info("user stats worker stopped")
}
