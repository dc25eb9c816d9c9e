package usecase

import (
	"context"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/domain/repository"
	"pasaratsiri/pkg/logger"
)

type LandingUseCase struct {
	userRepo repository.UserRepository
}

func NewLandingUseCase(userRepo repository.UserRepository) *LandingUseCase {
	return &LandingUseCase{
		userRepo: userRepo,
	}
}

// Stats returns the public role counters; zeros when unavailable.
func (uc *LandingUseCase) Stats(ctx context.Context) entity.UserStats {
	stats, err := uc.userRepo.GetStats(ctx)
	if err != nil {
		logger.Err(err, "loading landing stats")
		return entity.UserStats{}
	}
	return *stats
}
