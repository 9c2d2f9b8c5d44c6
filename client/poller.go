package client

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Poller re-fetches on a fixed interval. Before each round the previous
// in-flight request is cancelled, so a slow earlier response can never land
// after a newer one.
type Poller struct {
	name     string
	interval time.Duration

	mu         sync.Mutex
	cancelPrev context.CancelFunc
}

func NewPoller(name string, interval time.Duration) *Poller {
	return &Poller{
		name:     name,
		interval: interval,
	}
}

func (p *Poller) GetLogger() *log.Entry {
	return log.WithField("poller_name", p.name)
}

// Run blocks until ctx is done, firing jobFunc once per interval. Each round
// gets its own context which is cancelled when the next round starts or when
// ctx finishes.
func (p *Poller) Run(ctx context.Context, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			p.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	defer p.Stop()
	logger := p.GetLogger()
	for {
		select {
		case <-ctx.Done():
			logger.Info("poller stopped")
			return
		case <-time.After(p.interval):
			p.fire(ctx, jobFunc)
		}
	}
}

func (p *Poller) fire(ctx context.Context, jobFunc func(ctx context.Context) error) {
	p.mu.Lock()
	if p.cancelPrev != nil {
		p.cancelPrev()
	}
	roundCtx, cancel := context.WithCancel(ctx)
	p.cancelPrev = cancel
	p.mu.Unlock()

	go func() {
		err := jobFunc(roundCtx)
		if err != nil && !errorsIsCanceled(err) {
			p.GetLogger().WithError(err).Warn("poll round failed")
		}
	}()
}

// Stop cancels the in-flight round, if any.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancelPrev != nil {
		p.cancelPrev()
		p.cancelPrev = nil
	}
}

func errorsIsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
