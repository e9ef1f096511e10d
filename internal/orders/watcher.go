package orders

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Lister is the read side of the order store polled by a Watcher.
type Lister interface {
	List(ctx context.Context) ([]Order, error)
}

// Snapshot is one delivery of a subscription: the full order list, newest
// first, or the error of a failed poll.
type Snapshot struct {
	Orders []Order
	Err    error
}

// Watcher turns a polled order listing into a live subscription.
type Watcher struct {
	src      Lister
	interval time.Duration
	log      *zap.Logger
}

// NewWatcher returns a Watcher that polls src every interval.
func NewWatcher(src Lister, interval time.Duration, log *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{src: src, interval: interval, log: log}
}

// Subscribe delivers the current orders immediately and again every time
// the list changes. A failed poll delivers a Snapshot with Err set and the
// next successful poll is always delivered. The channel is closed once ctx
// is done.
func (w *Watcher) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	go w.run(ctx, ch)
	return ch
}

func (w *Watcher) run(ctx context.Context, ch chan<- Snapshot) {
	defer close(ch)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var (
		last    string
		hasLast bool
	)
	for {
		list, err := w.src.List(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.log.Warn("order poll failed", zap.Error(err))
			hasLast = false
			if !deliver(ctx, ch, Snapshot{Err: err}) {
				return
			}
		} else if fp := fingerprint(list); !hasLast || fp != last {
			last, hasLast = fp, true
			w.log.Debug("orders changed", zap.Int("count", len(list)))
			if !deliver(ctx, ch, Snapshot{Orders: list}) {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func deliver(ctx context.Context, ch chan<- Snapshot, s Snapshot) bool {
	select {
	case ch <- s:
		return true
	case <-ctx.Done():
		return false
	}
}

// fingerprint identifies the observable state of an ordered list.
func fingerprint(list []Order) string {
	var b strings.Builder
	for _, o := range list {
		b.WriteString(o.OrderID)
		b.WriteByte('|')
		b.WriteString(string(o.Status))
		b.WriteByte('|')
		b.WriteString(strconv.FormatInt(o.UpdatedAt.UnixNano(), 10))
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(o.Total, 'f', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}
