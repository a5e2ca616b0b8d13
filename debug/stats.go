package debug

// Periodic runtime statistics logger, started only when config.Debug is true.
// Goroutine count and stack usage rule out leaks from the render worker; RSS
// next to the Go heap shows growth in Tk's native image storage.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats is one sample of process statistics.
type Stats struct {
	Goroutines uint64
	HeapAlloc  uint64
	HeapInuse  uint64
	StackInuse uint64
	NumGC      uint32
	RSS        uint64 // 0 when the platform does not report it
}

// Collect samples the current statistics.
func Collect() Stats {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Stats{
		HeapAlloc:  ms.HeapAlloc,
		HeapInuse:  ms.HeapInuse,
		StackInuse: ms.StackInuse,
		NumGC:      ms.NumGC,
	}
	if samples[0].Value.Kind() == metrics.KindUint64 {
		s.Goroutines = samples[0].Value.Uint64()
	}
	s.RSS, _ = residentSetSize()
	return s
}

// Attrs renders s as slog key/value pairs with human readable sizes.
func (s Stats) Attrs() []any {
	attrs := []any{
		slog.Uint64("goroutines", s.Goroutines),
		slog.String("heap_alloc", humanize.IBytes(s.HeapAlloc)),
		slog.String("heap_inuse", humanize.IBytes(s.HeapInuse)),
		slog.String("stack_inuse", humanize.IBytes(s.StackInuse)),
		slog.Uint64("num_gc", uint64(s.NumGC)),
	}
	if s.RSS > 0 {
		attrs = append(attrs, slog.String("rss", humanize.IBytes(s.RSS)))
	}
	return attrs
}

// Start logs Collect every interval until ctx is done.
func Start(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logger.Info("runtime stats", Collect().Attrs()...)
			}
		}
	}()
}
