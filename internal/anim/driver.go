package anim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/pixelviz/internal/pixel"
	"github.com/san-kum/pixelviz/internal/render"
	"github.com/san-kum/pixelviz/internal/rule"
)

// Config holds the startup timing of the driver.
type Config struct {
	Interval   time.Duration
	Variations int
}

type Option func(*Driver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

type Driver struct {
	surface  Surface
	rule     rule.Rule
	renderer *render.Renderer
	frame    *render.Frame
	phase    *Phase
	interval time.Duration
	ticks    int
	logger   *log.Logger
}

// New sizes the frame buffer to the surface. The buffer is reused for every
// tick.
func New(s Surface, r rule.Rule, renderer *render.Renderer, cfg Config, opts ...Option) (*Driver, error) {
	if r == nil {
		return nil, ErrNoRule
	}
	if cfg.Variations < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidVariations, cfg.Variations)
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidInterval, cfg.Interval)
	}
	if renderer == nil {
		renderer = render.NewRenderer(pixel.Clamp)
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrInvalidSize, w, h)
	}

	d := &Driver{
		surface:  s,
		rule:     r,
		renderer: renderer,
		frame:    render.NewFrame(w, h),
		phase:    NewPhase(cfg.Variations),
		interval: cfg.Interval,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Tick advances the phase, redraws the frame and presents it.
func (d *Driver) Tick() error {
	if d.phase.Advance() {
		d.logger.Debug("phase wrapped", "ticks", d.ticks, "variations", d.phase.Variations())
	}
	d.renderer.Draw(d.frame, d.rule, d.phase.Value())
	d.ticks++
	return d.surface.Present(d.frame)
}

// Run ticks every interval until ctx is done. Present failures are logged and
// do not stop the loop.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("animation started", "size", fmt.Sprintf("%dx%d", d.frame.Width, d.frame.Height),
		"interval", d.interval, "variations", d.phase.Variations())

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("animation stopped", "ticks", d.ticks)
			return ctx.Err()
		case <-ticker.C:
			if err := d.Tick(); err != nil {
				d.logger.Warn("present failed", "tick", d.ticks, "err", err)
			}
		}
	}
}

// RestartCycle rewinds the phase so the next tick renders the first step
// again. The tick count is kept.
func (d *Driver) RestartCycle() {
	d.phase.Reset()
	d.logger.Debug("phase restarted", "ticks", d.ticks)
}

func (d *Driver) Phase() float64              { return d.phase.Value() }
func (d *Driver) Step() float64               { return d.phase.Step() }
func (d *Driver) Ticks() int                  { return d.ticks }
func (d *Driver) Frame() *render.Frame        { return d.frame }
func (d *Driver) Interval() time.Duration     { return d.interval }
func (d *Driver) Variations() int             { return d.phase.Variations() }
func (d *Driver) ChannelPolicy() pixel.Policy { return d.renderer.Policy() }
