package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/cropper-go/domain/crop"
	"github.com/soocke/cropper-go/ui/images"
)

// CropState provides the rectangle and handle to render.
type CropState interface {
	Rect() crop.Rect
	Part() crop.HandlePart
	Revision() uint64
}

// Shown reports whether the overlay is visible.
type Shown interface{ Visible() bool }

// MetricsSource returns the metrics the handles are drawn with.
type MetricsSource interface{ Metrics() crop.Metrics }

// PreviewView displays a rendered frame of the viewport.
type PreviewView interface {
	ShowFrame(png []byte)
}

// Appearance holds the rendering parameters that are not part of the crop state.
type Appearance struct {
	Width, Height int
	Sigma, Dim    float64
	Palette       images.Palette
}

type composeTask struct {
	seq      uint64
	key      images.BackdropKey
	src      image.Image
	input    images.ComposeInput
	enqueued time.Time
}

type composeResult struct {
	seq      uint64
	png      []byte
	err      error
	duration time.Duration
}

// PreviewPresenter renders the overlay on a background worker. Only the most
// recent request is kept: a newer one replaces a pending one, and results are
// applied to the view on Tick.
type PreviewPresenter struct {
	crop    CropState
	shown   Shown
	metrics MetricsSource
	view    PreviewView
	cache   *images.BackdropCache
	logger  *slog.Logger

	workerOnce sync.Once
	workCh     chan composeTask
	resultCh   chan composeResult

	src        image.Image
	srcName    string
	placed     crop.Rect
	look       Appearance
	generation uint64 // bumped when the source or appearance changes

	seq          uint64
	lastRevision uint64
	lastVisible  bool
	lastGen      uint64
	lastMetrics  crop.Metrics
	applied      uint64
}

// NewPreviewPresenter constructs a preview presenter.
func NewPreviewPresenter(state CropState, shown Shown, metrics MetricsSource, view PreviewView, cache *images.BackdropCache, logger *slog.Logger) *PreviewPresenter {
	return &PreviewPresenter{
		crop:     state,
		shown:    shown,
		metrics:  metrics,
		view:     view,
		cache:    cache,
		logger:   logger,
		workCh:   make(chan composeTask, 1),
		resultCh: make(chan composeResult, 1),
	}
}

// SetSource replaces the displayed image and where it is placed in the viewport.
func (p *PreviewPresenter) SetSource(name string, src image.Image, placed crop.Rect) {
	if p == nil {
		return
	}
	p.src, p.srcName, p.placed = src, name, placed
	p.generation++
}

// SetAppearance changes viewport size, blur, dimming and colors.
func (p *PreviewPresenter) SetAppearance(a Appearance) {
	if p == nil {
		return
	}
	p.look = a
	p.generation++
}

// Tick applies finished renders and schedules a new one when anything visible changed.
func (p *PreviewPresenter) Tick() {
	if p == nil || p.crop == nil || p.view == nil {
		return
	}
	p.ensureWorker()

	for {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			goto drained
		}
	}

drained:
	if p.src == nil {
		return
	}
	visible := p.shown == nil || p.shown.Visible()
	var m crop.Metrics
	if p.metrics != nil {
		m = p.metrics.Metrics()
	}
	rev := p.crop.Revision()
	if p.seq > 0 && rev == p.lastRevision && visible == p.lastVisible && p.generation == p.lastGen && m == p.lastMetrics {
		return
	}
	p.lastRevision, p.lastVisible, p.lastGen, p.lastMetrics = rev, visible, p.generation, m
	p.seq++
	p.dispatch(composeTask{
		seq: p.seq,
		key: images.BackdropKey{
			Source: fmt.Sprintf("%s#%d", p.srcName, p.generation),
			Width:  int(p.placed.Width), Height: int(p.placed.Height),
			Sigma: p.look.Sigma, Dim: p.look.Dim,
		},
		src: p.src,
		input: images.ComposeInput{
			Width: p.look.Width, Height: p.look.Height,
			Placed:  p.placed,
			Crop:    p.crop.Rect(),
			Metrics: m,
			Part:    p.crop.Part(),
			Visible: visible,
			Palette: p.look.Palette,
		},
		enqueued: time.Now(),
	})
}

// Pending reports whether a render was requested but not yet shown.
func (p *PreviewPresenter) Pending() bool { return p != nil && p.applied < p.seq }

func (p *PreviewPresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *PreviewPresenter) runWorker() {
	for task := range p.workCh {
		res := p.render(task)
		select {
		case p.resultCh <- res:
		default:
			select {
			case <-p.resultCh:
			default:
			}
			select {
			case p.resultCh <- res:
			default:
			}
		}
	}
}

func (p *PreviewPresenter) dispatch(task composeTask) {
	select {
	case p.workCh <- task:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- task:
		default:
		}
	}
}

func (p *PreviewPresenter) render(task composeTask) (res composeResult) {
	res.seq = task.seq
	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("compose panic: %v", r)
		}
	}()
	start := time.Now()
	in := task.input
	in.Backdrop = p.cache.Get(task.key, task.src)
	frame := images.Compose(in)
	res.png = images.EncodePNG(frame)
	res.duration = time.Since(start)
	return res
}

func (p *PreviewPresenter) handleResult(res composeResult) {
	if res.err != nil {
		if p.logger != nil {
			p.logger.Error("preview", "error", res.err)
		}
		return
	}
	if res.seq < p.applied {
		return
	}
	p.applied = res.seq
	if len(res.png) == 0 {
		return
	}
	p.view.ShowFrame(res.png)
	if p.logger != nil {
		p.logger.Debug("preview rendered", "seq", res.seq, "duration", res.duration)
	}
}
