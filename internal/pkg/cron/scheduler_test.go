package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce(t *testing.T) {
	s := NewScheduler()

	var runs int32
	s.AddJob("count", time.Hour, func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(context.Context) error {
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&runs))
}

func TestStartStop(t *testing.T) {
	s := NewScheduler()

	var runs int32
	s.AddJob("tick", 10*time.Millisecond, func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// ran at least on start
	assert.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(1))

	after := atomic.LoadInt32(&runs)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs))
}
