package schedule

import (
	"context"
	"time"

	"go-weather/internal/domain/usecase/favorites"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// FavoritesScheduler periodically compacts the favorites store
type FavoritesScheduler struct {
	cron           *cron.Cron
	useCase        favorites.UseCase
	cronExpression string
	timeout        time.Duration
}

// NewFavoritesScheduler creates the scheduler. An empty cron expression disables compaction.
func NewFavoritesScheduler(useCase favorites.UseCase, cronExpression string, timeout time.Duration) *FavoritesScheduler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &FavoritesScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
		timeout:        timeout,
	}
}

// InitFavoritesScheduleTasks registers the compaction job and starts the cron
func (s *FavoritesScheduler) InitFavoritesScheduleTasks() error {
	if s.cronExpression == "" {
		log.Info(msg.GetMessage("favorites.cron.disabled"))
		return nil
	}

	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("favorites.cron.started", s.cronExpression))
	return nil
}

// ExecuteScheduledTask runs one compaction
func (s *FavoritesScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("favorites.cron.start"), zap.String("request_id", requestID))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.useCase.Compact(ctx, requestID); err != nil {
		log.Error(msg.GetMessage("favorites.cron.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("favorites.cron.end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *FavoritesScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
