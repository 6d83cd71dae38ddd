package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name string
	runs atomic.Int32
	err  error
}

func (j *countingJob) Run() error {
	j.runs.Add(1)
	return j.err
}

func (j *countingJob) Name() string {
	return j.name
}

func TestAddJob_RejectsDuplicatesAndBadSchedules(t *testing.T) {
	s := New(zerolog.Nop())

	require.NoError(t, s.AddJob("@every 1h", &countingJob{name: "a"}))
	assert.Error(t, s.AddJob("@every 1h", &countingJob{name: "a"}))
	assert.Error(t, s.AddJob("not a schedule", &countingJob{name: "b"}))
}

func TestRunNow_RecordsStatus(t *testing.T) {
	s := New(zerolog.Nop())
	ok := &countingJob{name: "ok"}
	failing := &countingJob{name: "failing", err: errors.New("disk full")}

	require.NoError(t, s.AddJob("@every 1h", ok))
	require.NoError(t, s.AddJob("@every 1h", failing))

	require.NoError(t, s.RunNow("ok"))
	assert.EqualError(t, s.RunNow("failing"), "disk full")
	assert.ErrorIs(t, s.RunNow("missing"), ErrUnknownJob)

	statuses := s.Status()
	require.Len(t, statuses, 2)

	assert.Equal(t, "failing", statuses[0].Name)
	assert.Equal(t, 1, statuses[0].Runs)
	assert.Equal(t, "disk full", statuses[0].LastError)

	assert.Equal(t, "ok", statuses[1].Name)
	assert.Equal(t, "@every 1h", statuses[1].Schedule)
	assert.Empty(t, statuses[1].LastError)
	assert.False(t, statuses[1].LastRun.IsZero())
	assert.Equal(t, int32(1), ok.runs.Load())
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	s := New(zerolog.Nop())
	job := &countingJob{name: "tick"}
	require.NoError(t, s.AddJob("@every 1s", job))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return job.runs.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}
