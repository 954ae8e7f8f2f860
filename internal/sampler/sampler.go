package sampler

import (
	"context"
	"time"

	"github.com/zenmetrics/zenmon/internal/model"
	"github.com/zenmetrics/zenmon/internal/smu"
)

// Event is one poll result: a decoded Reading or the error that
// prevented it. A failed poll never carries a partial Reading.
type Event struct {
	Reading *model.Reading
	Err     error
}

// Sampler periodically fetches and decodes the PM table.
type Sampler struct {
	reader   *smu.Reader
	interval time.Duration
}

func New(reader *smu.Reader, interval time.Duration) *Sampler {
	return &Sampler{reader: reader, interval: interval}
}

// Stream returns a channel that receives one Event immediately and then
// one per interval until ctx is done. The channel closes on cancellation.
func (s *Sampler) Stream(ctx context.Context) <-chan Event {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		if !s.emit(ctx, ch) {
			return
		}
		for {
			select {
			case <-ticker.C:
				if !s.emit(ctx, ch) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func (s *Sampler) emit(ctx context.Context, ch chan<- Event) bool {
	reading, err := s.reader.Read()
	select {
	case ch <- Event{Reading: reading, Err: err}:
		return true
	case <-ctx.Done():
		return false
	}
}
