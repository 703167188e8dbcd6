package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	testingclock "k8s.io/utils/clock/testing"
)

func newTestPullJob(t *testing.T) (*clientPullJob, *mock.MockClientSyncCoordinator, *testingclock.FakeClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	coordinator := mock.NewMockClientSyncCoordinator(ctrl)
	clk := testingclock.NewFakeClock(time.Now())

	job := NewClientPullJob(coordinator, clk, logger.Nop()).(*clientPullJob)
	t.Cleanup(job.Stop)
	return job, coordinator, clk
}

func TestClientPullJob_Start_PullsOnEveryTick(t *testing.T) {
	job, coordinator, clk := newTestPullJob(t)

	pulled := make(chan struct{}, 8)
	coordinator.EXPECT().LoadAll(gomock.Any(), false).
		Do(func(context.Context, bool) { pulled <- struct{}{} }).
		Times(3)

	job.Start(context.Background(), time.Minute)

	for i := 0; i < 3; i++ {
		clk.Step(time.Minute)
		select {
		case <-pulled:
		case <-time.After(time.Second):
			t.Fatalf("тик %d не вызвал LoadAll", i+1)
		}
	}
}

func TestClientPullJob_Start_DefaultInterval(t *testing.T) {
	job, coordinator, clk := newTestPullJob(t)

	pulled := make(chan struct{}, 1)
	coordinator.EXPECT().LoadAll(gomock.Any(), false).
		Do(func(context.Context, bool) { pulled <- struct{}{} }).
		Times(1)

	// interval <= 0 → дефолтный интервал
	job.Start(context.Background(), 0)

	clk.Step(config.DefaultPullInterval - time.Second)
	assert.Never(t, func() bool { return len(pulled) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	clk.Step(time.Second)
	require.Eventually(t, func() bool { return len(pulled) == 1 }, time.Second, 5*time.Millisecond)
}

func TestClientPullJob_Stop_StopsGoroutine(t *testing.T) {
	job, _, clk := newTestPullJob(t)

	job.Start(context.Background(), time.Minute)
	job.Stop()

	// после Stop горутина завершена, LoadAll не ожидается
	clk.Step(time.Hour)
	time.Sleep(20 * time.Millisecond)
}

func TestClientPullJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job, _, _ := newTestPullJob(t)

	assert.NotPanics(t, job.Stop)
	assert.NotPanics(t, job.Stop)
}

func TestClientPullJob_Start_Twice_ReplacesJob(t *testing.T) {
	job, coordinator, clk := newTestPullJob(t)

	pulled := make(chan struct{}, 4)
	coordinator.EXPECT().LoadAll(gomock.Any(), false).
		Do(func(context.Context, bool) { pulled <- struct{}{} }).
		Times(1)

	job.Start(context.Background(), time.Minute)
	job.Start(context.Background(), time.Minute)

	clk.Step(time.Minute)
	require.Eventually(t, func() bool { return len(pulled) == 1 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return len(pulled) > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestClientPullJob_ParentContextCancel(t *testing.T) {
	job, _, _ := newTestPullJob(t)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, time.Minute)
	cancel()

	stopped := make(chan struct{})
	go func() {
		job.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("горутина не завершилась после отмены контекста")
	}
}
