package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourCatalog/pkg/logger"
)

type countingRefresher struct {
	mu       sync.Mutex
	calls    int
	err      error
	deadline bool
	block    chan struct{}
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.calls++
	_, r.deadline = ctx.Deadline()
	block := r.block
	err := r.err
	r.mu.Unlock()

	if block != nil {
		<-block
	}
	return err
}

func (r *countingRefresher) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *countingRefresher) hadDeadline() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deadline
}

// fastSchedule срабатывает чаще секундного минимума cron.Every
type fastSchedule struct {
	delay time.Duration
}

func (s fastSchedule) Next(t time.Time) time.Time {
	return t.Add(s.delay)
}

func newFastScheduler(r CatalogRefresher) *Scheduler {
	s := New(r, logger.NewNop(), 1, time.Second)
	s.schedule = fastSchedule{delay: 10 * time.Millisecond}
	return s
}

func TestNew_Spec(t *testing.T) {
	s := New(&countingRefresher{}, logger.NewNop(), 300, time.Second)
	require.NotNil(t, s.schedule)
	assert.Equal(t, "@every 5m0s", s.spec)
}

func TestScheduler_RefreshesPeriodically(t *testing.T) {
	r := &countingRefresher{}
	s := newFastScheduler(r)

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return r.callCount() >= 2 }, 2*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	stopped := r.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, r.callCount())
	assert.True(t, r.hadDeadline())
}

func TestScheduler_FailedRefreshKeepsRunning(t *testing.T) {
	r := &countingRefresher{err: errors.New("db down")}
	s := newFastScheduler(r)

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return r.callCount() >= 3 }, 2*time.Second, 5*time.Millisecond)
	s.Stop(context.Background())
}

func TestScheduler_Disabled(t *testing.T) {
	r := &countingRefresher{}
	s := New(r, logger.NewNop(), 0, time.Second)

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	s.Stop(context.Background())

	assert.Nil(t, s.schedule)
	assert.Equal(t, 0, r.callCount())
}

func TestScheduler_StopRespectsTimeout(t *testing.T) {
	r := &countingRefresher{block: make(chan struct{})}
	s := newFastScheduler(r)

	require.NoError(t, s.Start(context.Background()))
	require.Eventually(t, func() bool { return r.callCount() >= 1 }, 2*time.Second, 5*time.Millisecond)

	// обновление висит, Stop возвращается по таймауту
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	s.Stop(ctx)
	assert.Less(t, time.Since(start), time.Second)

	close(r.block)
}
