// Package scheduler запускает периодическое обновление каталога туров по cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler оборачивает robfig/cron и периодически обновляет снапшот каталога
// Неудачное обновление оставляет предыдущий снапшот до следующего запуска
type Scheduler struct {
	cron        *cron.Cron
	refresher   CatalogRefresher
	logger      Logger
	schedule    cron.Schedule
	spec        string
	loadTimeout time.Duration
}

// New создает планировщик с интервалом обновления в секундах
// Нулевой интервал отключает периодическое обновление
func New(refresher CatalogRefresher, logger Logger, intervalSeconds int, loadTimeout time.Duration) *Scheduler {
	cronLog := cronLogger{logger: logger}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		refresher:   refresher,
		logger:      logger,
		loadTimeout: loadTimeout,
	}

	if intervalSeconds > 0 {
		interval := time.Duration(intervalSeconds) * time.Second
		s.schedule = cron.Every(interval)
		s.spec = fmt.Sprintf("@every %s", interval)
	}

	return s
}

// Start регистрирует задачу обновления и запускает cron
// Первичная загрузка выполняется вызывающей стороной до старта
func (s *Scheduler) Start(ctx context.Context) error {
	if s.schedule == nil {
		s.logger.Info("Scheduler: periodic catalog refresh disabled")
		return nil
	}

	s.cron.Schedule(s.schedule, cron.FuncJob(func() {
		s.runRefresh(ctx)
	}))

	s.cron.Start()
	s.logger.Info("Scheduler: cron started, spec=%s", s.spec)

	return nil
}

// Stop останавливает cron и ждет завершения текущего обновления, но не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.logger.Info("Scheduler: cron stopped")
	case <-ctx.Done():
		s.logger.Warn("Scheduler: stop timed out, refresh still running")
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	if err := s.refresher.Refresh(refreshCtx); err != nil {
		s.logger.Warn("Scheduler: keeping previous snapshot: %v", err)
	}
}

// cronLogger адаптирует Logger к интерфейсу cron.Logger
type cronLogger struct {
	logger Logger
}

// Info cron пишет на каждый запуск задачи, поэтому уровень debug
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
