package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"clubportal-backend-go/internal/models"
)

var ErrOutboxFull = errors.New("outbox full")

type outboxJob struct {
	name string
	run  func(ctx context.Context) error
}

// Outbox hands broker and mail deliveries to one background worker. Each job
// gets its own deadline; request contexts are never used for delivery.
type Outbox struct {
	mu      sync.Mutex
	closed  bool
	jobs    chan outboxJob
	timeout time.Duration
	done    chan struct{}
}

func NewOutbox(size int, timeout time.Duration) *Outbox {
	if size <= 0 {
		size = 256
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	o := &Outbox{
		jobs:    make(chan outboxJob, size),
		timeout: timeout,
		done:    make(chan struct{}),
	}
	go o.run()
	return o
}

func (o *Outbox) run() {
	defer close(o.done)
	for job := range o.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
		if err := job.run(ctx); err != nil {
			log.Printf("outbox %s: %v", job.name, err)
		}
		cancel()
	}
}

// Enqueue never blocks; a full or closed outbox rejects the job.
func (o *Outbox) Enqueue(name string, run func(ctx context.Context) error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrOutboxFull
	}
	select {
	case o.jobs <- outboxJob{name: name, run: run}:
		return nil
	default:
		return ErrOutboxFull
	}
}

// Close stops accepting jobs and waits for the queue to drain or ctx to end.
func (o *Outbox) Close(ctx context.Context) error {
	o.mu.Lock()
	if !o.closed {
		o.closed = true
		close(o.jobs)
	}
	o.mu.Unlock()
	select {
	case <-o.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AsyncPublisher queues lifecycle events on an Outbox.
type AsyncPublisher struct {
	next   Publisher
	outbox *Outbox
}

func NewAsyncPublisher(next Publisher, outbox *Outbox) *AsyncPublisher {
	return &AsyncPublisher{next: next, outbox: outbox}
}

func (p *AsyncPublisher) Publish(_ context.Context, event LifecycleEvent) error {
	return p.outbox.Enqueue("publish "+event.Type, func(ctx context.Context) error {
		return p.next.Publish(ctx, event)
	})
}

// AsyncNotifier queues approval mail on an Outbox.
type AsyncNotifier struct {
	next   Notifier
	outbox *Outbox
}

func NewAsyncNotifier(next Notifier, outbox *Outbox) *AsyncNotifier {
	return &AsyncNotifier{next: next, outbox: outbox}
}

func (n *AsyncNotifier) MemberApproved(_ context.Context, member models.Member) error {
	return n.outbox.Enqueue("approval mail "+member.ID, func(ctx context.Context) error {
		return n.next.MemberApproved(ctx, member)
	})
}
