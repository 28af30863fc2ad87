// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/sizopi-be/internal/core/ports"
)

const (
	TypeReservationComplete = "reservation:complete"
	TypeAdopterReport       = "report:adopters"
)

// AdopterReportPayload is the payload of a report:adopters task
type AdopterReportPayload struct {
	N           int       `json:"n"`
	RequestedAt time.Time `json:"requested_at"`
}

// ReservationCompletePayload is the payload of a reservation:complete task.
// A zero Before means the start of the current UTC day.
type ReservationCompletePayload struct {
	Before time.Time `json:"before"`
}

// NewAdopterReportTask builds a task that publishes the top-n workbook
func NewAdopterReportTask(n int, requestedAt time.Time) (*asynq.Task, error) {
	b, err := json.Marshal(AdopterReportPayload{N: n, RequestedAt: requestedAt.UTC()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report payload: %w", err)
	}
	return asynq.NewTask(TypeAdopterReport, b, asynq.MaxRetry(3), asynq.Timeout(5*time.Minute)), nil
}

// NewReservationCompleteTask builds a task that closes out past visits
func NewReservationCompleteTask() (*asynq.Task, error) {
	b, err := json.Marshal(ReservationCompletePayload{})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion payload: %w", err)
	}
	return asynq.NewTask(TypeReservationComplete, b, asynq.MaxRetry(5), asynq.Unique(time.Hour)), nil
}

// enqueuer is the part of *asynq.Client the queue needs
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

var _ ports.TaskQueue = (*Queue)(nil)

// Queue enqueues background work for the worker process
type Queue struct {
	client enqueuer
	logger *slog.Logger
	now    func() time.Time
}

// NewQueue wraps an asynq client
func NewQueue(client enqueuer, logger *slog.Logger) *Queue {
	return &Queue{
		client: client,
		logger: logger.With(slog.String("component", "task_queue")),
		now:    time.Now,
	}
}

// EnqueueAdopterReport queues a report:adopters task and returns its id
func (q *Queue) EnqueueAdopterReport(ctx context.Context, n int) (string, error) {
	task, err := NewAdopterReportTask(n, q.now())
	if err != nil {
		return "", err
	}
	return q.enqueue(ctx, task, asynq.Queue("default"), asynq.Retention(24*time.Hour))
}

// EnqueueReservationCompletion queues a reservation:complete task
func (q *Queue) EnqueueReservationCompletion(ctx context.Context) (string, error) {
	task, err := NewReservationCompleteTask()
	if err != nil {
		return "", err
	}
	return q.enqueue(ctx, task, asynq.Queue("low"))
}

func (q *Queue) enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (string, error) {
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}

	q.logger.InfoContext(ctx, "task enqueued",
		slog.String("type", task.Type()),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))

	return info.ID, nil
}
