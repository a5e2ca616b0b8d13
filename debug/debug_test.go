package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestCollect(t *testing.T) {
	s := Collect()
	if s.Goroutines == 0 || s.HeapAlloc == 0 {
		t.Fatalf("expected live statistics, got %+v", s)
	}
}

func TestAttrs_HumanizesSizes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("stats", Stats{Goroutines: 3, HeapAlloc: 2048, RSS: 3 << 20}.Attrs()...)
	out := buf.String()
	for _, want := range []string{"goroutines=3", `heap_alloc="2.0 KiB"`, `rss="3.0 MiB"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %q", want, out)
		}
	}
	buf.Reset()
	logger.Info("stats", Stats{}.Attrs()...)
	if strings.Contains(buf.String(), "rss=") {
		t.Fatalf("zero rss should be omitted: %q", buf.String())
	}
}

type syncBuffer struct {
	ch chan string
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	select {
	case b.ch <- string(p):
	default:
	}
	return len(p), nil
}

func TestStart_LogsUntilCancelled(t *testing.T) {
	out := &syncBuffer{ch: make(chan string, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Start(ctx, 5*time.Millisecond, slog.New(slog.NewTextHandler(out, nil)))
	select {
	case line := <-out.ch:
		if !strings.Contains(line, "runtime stats") {
			t.Fatalf("unexpected log line %q", line)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no stats logged")
	}
}
