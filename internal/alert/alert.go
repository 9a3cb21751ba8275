package alert

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/metrics"
)

type Kind string

const (
	Success   Kind = "success"
	Error     Kind = "error"
	Duplicate Kind = "duplicate"
)

const playTimeout = 5 * time.Second

type Player interface {
	Play(ctx context.Context, kind Kind) error
}

// Dispatcher plays alerts on a single background worker. Notify never blocks
// the caller; a full queue drops the alert.
type Dispatcher struct {
	player Player
	logger *zap.Logger

	events     chan Kind
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewDispatcher(player Player, buffer int, logger *zap.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		player:     player,
		logger:     logger,
		events:     make(chan Kind, buffer),
		shutdownCh: make(chan struct{}),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Debug("starting alert dispatcher")
	d.wg.Add(1)
	go d.runWorker()
	go d.monitorShutdown(ctx)
}

// Run starts the dispatcher and blocks until ctx is done, then drains the
// queue.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.Start(ctx)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), playTimeout)
	defer cancel()
	d.Shutdown(shutdownCtx)
	return nil
}

// Notify queues an alert and reports whether it was accepted.
func (d *Dispatcher) Notify(kind Kind) bool {
	select {
	case <-d.shutdownCh:
		return false
	default:
	}

	select {
	case d.events <- kind:
		return true
	default:
		metrics.AlertsDroppedTotal.Inc()
		d.logger.Debug("alert dropped", zap.String("kind", string(kind)))
		return false
	}
}

func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.once.Do(func() {
		close(d.shutdownCh)

		done := make(chan struct{})
		go func() {
			d.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			d.logger.Debug("alert dispatcher stopped")
		case <-ctx.Done():
			d.logger.Warn("alert dispatcher shutdown interrupted")
		}
	})
}

func (d *Dispatcher) monitorShutdown(ctx context.Context) {
	select {
	case <-ctx.Done():
		d.Shutdown(context.Background())
	case <-d.shutdownCh:
	}
}

// runWorker only stops through shutdownCh so queued alerts are always drained.
func (d *Dispatcher) runWorker() {
	defer d.wg.Done()

	for {
		select {
		case kind := <-d.events:
			d.play(kind)
		case <-d.shutdownCh:
			for {
				select {
				case kind := <-d.events:
					d.play(kind)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) play(kind Kind) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("alert player panicked", zap.String("kind", string(kind)), zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), playTimeout)
	defer cancel()

	if err := d.player.Play(ctx, kind); err != nil {
		d.logger.Warn("failed to play alert", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// KindFor maps an outcome to the alert an operator should hear.
func KindFor(err error, duplicate bool) Kind {
	switch {
	case err == nil:
		return Success
	case duplicate:
		return Duplicate
	default:
		return Error
	}
}
