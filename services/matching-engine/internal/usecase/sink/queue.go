package sink

import (
	"context"
	"sync"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
)

// Job is one side effect. Its error is logged and never retried.
type Job func(ctx context.Context) error

type task struct {
	name string
	ctx  context.Context
	run  Job
}

// Stats reports queue progress.
type Stats struct {
	Pending   int   `json:"pending"`
	Processed int64 `json:"processed"`
	Failed    int64 `json:"failed"`
}

// Queue runs jobs on a single goroutine strictly in enqueue order. Enqueue never
// blocks, so it is safe to call from order book listeners.
type Queue struct {
	logger *logger.Logger

	mu        sync.Mutex
	tasks     []task
	closed    bool
	processed int64
	failed    int64

	notify chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewQueue starts a queue. It runs until Close.
func NewQueue(log *logger.Logger) *Queue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		logger: log,
		notify: make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

// Enqueue schedules job after everything enqueued before it. The job sees the
// values of ctx but is cancelled only by the queue. It reports false once the
// queue is closed.
func (q *Queue) Enqueue(ctx context.Context, name string, job Job) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.WarnContext(ctx, "sink closed, dropping job", logger.NewField("job", name))
		return false
	}
	q.tasks = append(q.tasks, task{name: name, ctx: ctx, run: job})
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return true
}

// Flush waits until every job enqueued before the call has run.
func (q *Queue) Flush(ctx context.Context) error {
	reached := make(chan struct{})
	if !q.Enqueue(ctx, "flush", func(context.Context) error {
		close(reached)
		return nil
	}) {
		return nil
	}

	select {
	case <-reached:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs, drains what is queued and stops the worker. When
// ctx expires first, running and pending jobs are cancelled.
func (q *Queue) Close(ctx context.Context) error {
	if err := q.Flush(ctx); err != nil {
		q.cancel()
		return err
	}

	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.cancel()
	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns a point-in-time view of the queue.
func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Stats{Pending: len(q.tasks), Processed: q.processed, Failed: q.failed}
}

func (q *Queue) run() {
	defer close(q.done)

	for {
		select {
		case <-q.ctx.Done():
			q.discard()
			return
		case <-q.notify:
		}

		for {
			t, ok := q.next()
			if !ok {
				break
			}
			q.execute(t)
		}
	}
}

func (q *Queue) next() (task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return task{}, false
	}
	t := q.tasks[0]
	q.tasks[0] = task{}
	q.tasks = q.tasks[1:]
	return t, true
}

func (q *Queue) execute(t task) {
	ctx := jobContext{Context: q.ctx, values: t.ctx}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.New(errors.GeneralInternalServerError, "sink job panicked", t.name)
			}
		}()
		return t.run(ctx)
	}()

	q.mu.Lock()
	q.processed++
	if err != nil {
		q.failed++
	}
	q.mu.Unlock()

	if err != nil {
		q.logger.ErrorContext(t.ctx, err, logger.NewField("job", t.name))
	}
}

func (q *Queue) discard() {
	q.mu.Lock()
	dropped := len(q.tasks)
	q.tasks = nil
	q.closed = true
	q.mu.Unlock()

	if dropped > 0 {
		q.logger.Warn("sink stopped with pending jobs", logger.NewField("dropped", dropped))
	}
}

// jobContext takes deadline and cancellation from the queue and values from
// the context the job was enqueued with.
type jobContext struct {
	context.Context
	values context.Context
}

func (c jobContext) Value(key any) any {
	return c.values.Value(key)
}
