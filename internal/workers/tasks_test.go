// internal/workers/tasks_test.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default", Type: task.Type()}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueue_EnqueueAdopterReport(t *testing.T) {
	rec := &recordingEnqueuer{}
	q := NewQueue(rec, discardLogger())
	q.now = func() time.Time { return time.Date(2025, time.May, 1, 9, 30, 0, 0, time.UTC) }

	id, err := q.EnqueueAdopterReport(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)

	require.Len(t, rec.tasks, 1)
	assert.Equal(t, TypeAdopterReport, rec.tasks[0].Type())

	var payload AdopterReportPayload
	require.NoError(t, json.Unmarshal(rec.tasks[0].Payload(), &payload))
	assert.Equal(t, 7, payload.N)
	assert.Equal(t, time.Date(2025, time.May, 1, 9, 30, 0, 0, time.UTC), payload.RequestedAt)
}

func TestQueue_EnqueueReservationCompletion(t *testing.T) {
	t.Run("enqueues_completion", func(t *testing.T) {
		rec := &recordingEnqueuer{}
		q := NewQueue(rec, discardLogger())

		_, err := q.EnqueueReservationCompletion(context.Background())
		require.NoError(t, err)
		require.Len(t, rec.tasks, 1)
		assert.Equal(t, TypeReservationComplete, rec.tasks[0].Type())
	})

	t.Run("client_error_is_wrapped", func(t *testing.T) {
		q := NewQueue(&recordingEnqueuer{err: errors.New("redis: connection refused")}, discardLogger())

		_, err := q.EnqueueReservationCompletion(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), TypeReservationComplete)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		name  string
		retry int
		want  time.Duration
	}{
		{"first_retry", 0, time.Second},
		{"third_retry", 3, 8 * time.Second},
		{"capped", 12, 10 * time.Minute},
		{"large_retry_does_not_overflow", 80, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExponentialBackoff(tt.retry, nil, nil))
		})
	}
}
