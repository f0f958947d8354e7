package services

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/pkg/logger"
)

const TaskTypeRecompute = "workload:recompute"

// RecomputeTask asks for one employee's workload metrics to be recomputed
// and the cache re-primed, typically after an import touches their data.
type RecomputeTask struct {
	EmployeeID uint   `json:"employee_id"`
	Reason     string `json:"reason"`
}

// RecomputeFunc processes one recompute request.
type RecomputeFunc func(context.Context, *RecomputeTask) error

// TaskQueue abstracts how recompute jobs are delivered.
type TaskQueue interface {
	Enqueue(task *RecomputeTask) error
	IsAsync() bool
	Close() error
}

// NewTaskQueue returns an asynq-backed queue when Redis is enabled, and an
// inline synchronous queue otherwise.
func NewTaskQueue(cfg *config.RedisConfig, processor RecomputeFunc) TaskQueue {
	if cfg != nil && cfg.Enabled {
		queue, err := newAsyncQueue(cfg)
		if err == nil {
			logger.Infof("[TaskQueue] async mode, redis=%s", cfg.Addr)
			return queue
		}
		logger.Warnf("[TaskQueue] redis unavailable, falling back to sync mode: %v", err)
	}
	return &syncQueue{processor: processor}
}

// syncQueue processes tasks inline on the caller's goroutine.
type syncQueue struct {
	processor RecomputeFunc
}

func (q *syncQueue) Enqueue(task *RecomputeTask) error {
	if q.processor == nil {
		return nil
	}
	return q.processor(context.Background(), task)
}

func (q *syncQueue) IsAsync() bool { return false }
func (q *syncQueue) Close() error  { return nil }

// asyncQueue hands tasks to asynq for background processing.
type asyncQueue struct {
	client *asynq.Client
}

func newAsyncQueue(cfg *config.RedisConfig) (*asyncQueue, error) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(); err != nil {
		client.Close()
		return nil, err
	}
	return &asyncQueue{client: client}, nil
}

func (q *asyncQueue) Enqueue(task *RecomputeTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	_, err = q.client.Enqueue(asynq.NewTask(TaskTypeRecompute, payload))
	return err
}

func (q *asyncQueue) IsAsync() bool { return true }
func (q *asyncQueue) Close() error  { return q.client.Close() }
