package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/praxishq/praxis/internal/config"
	"github.com/praxishq/praxis/pkg/logger"
)

// Worker consumes recompute tasks from the async queue.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	processor RecomputeFunc
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// NewWorker creates a worker, or nil when the async queue is disabled.
func NewWorker(cfg *config.RedisConfig, processor RecomputeFunc) *Worker {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Errorf("[Worker] task %s failed: %v", task.Type(), err)
			}),
		},
	)

	return &Worker{
		server:    server,
		mux:       asynq.NewServeMux(),
		processor: processor,
	}
}

// Start begins processing tasks in the background.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	w.mux.HandleFunc(TaskTypeRecompute, w.handleRecompute)
	w.running = true
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		logger.Infof("[Worker] starting recompute worker")
		if err := w.server.Run(w.mux); err != nil {
			logger.Errorf("[Worker] server error: %v", err)
		}
	}()
}

// Stop shuts the worker down and waits for in-flight tasks.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.server.Shutdown()
	w.wg.Wait()
	w.running = false
}

func (w *Worker) handleRecompute(ctx context.Context, task *asynq.Task) error {
	var rt RecomputeTask
	if err := json.Unmarshal(task.Payload(), &rt); err != nil {
		return err
	}
	return w.processor(ctx, &rt)
}
