package period

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timeaxis/internal/axis"
	"timeaxis/internal/logger"
)

// Controller owns the state of one timeline session: the scale currently shown, the highlighted
// period, and the scale transition in flight. Changing the period starts a transition towards
// the period's domain; until the host finishes or cancels it, clicks are refused and text
// commits wait.
type Controller struct {
	mu       sync.Mutex
	scale    *axis.TimeScale
	period   *Period
	inflight *Transition

	now func() time.Time
	log *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used to default empty date text to the current year.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger rejected commits are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// NewController starts a session showing scale.
func NewController(scale *axis.TimeScale, opts ...Option) *Controller {
	c := &Controller{scale: scale, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.L()
	}
	return c
}

// Scale returns the scale currently shown.
func (c *Controller) Scale() *axis.TimeScale {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale
}

// Period returns the highlighted period, if any.
func (c *Controller) Period() (Period, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.period == nil {
		return Period{}, false
	}
	return *c.period, true
}

// Busy reports whether a transition is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight != nil
}

// Highlight returns the highlighted period clipped to the domain currently shown. It returns
// false when nothing is highlighted or the period is scrolled out of view.
func (c *Controller) Highlight() (Period, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.period == nil {
		return Period{}, false
	}
	start, end := c.scale.Domain()
	return c.period.Clip(start, end)
}

// Click selects the tick interval under pixel offset x and starts the transition to it.
// It fails with ErrBusy while another transition is in flight and with ErrOutOfDomain when the
// click misses every tick interval; neither changes the current period.
func (c *Controller) Click(x float64) (Period, *Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight != nil {
		return Period{}, nil, ErrBusy
	}
	p, ok := ResolveClick(x, c.scale)
	if !ok {
		c.log.Debug("period.click_ignored", "x", x)
		return Period{}, nil, ErrOutOfDomain
	}
	c.log.Debug("period.clicked", "x", x, "period", p.String())
	return p, c.install(p), nil
}

// Commit replaces the period with the dates typed into the form. It first waits for any
// transition in flight to end. Text that does not parse, or a start that is not before the
// end, is rejected and the current period is kept.
func (c *Controller) Commit(ctx context.Context, startText, endText string) (Period, *Transition, error) {
	if err := c.lockIdle(ctx); err != nil {
		return Period{}, nil, err
	}
	defer c.mu.Unlock()

	now := c.now()
	start, err := ParseDateText(startText, now)
	if err != nil {
		c.log.Warn("period.commit_rejected", "field", "start", "error", err)
		return Period{}, nil, err
	}
	end, err := ParseDateText(endText, now)
	if err != nil {
		c.log.Warn("period.commit_rejected", "field", "end", "error", err)
		return Period{}, nil, err
	}
	p, err := New(start, end)
	if err != nil {
		c.log.Warn("period.commit_rejected", "error", err)
		return Period{}, nil, err
	}
	c.log.Debug("period.committed", "period", p.String())
	return p, c.install(p), nil
}

// FormText waits for any transition in flight, then returns the period's endpoints as the axis
// labels them at the current scale.
func (c *Controller) FormText(ctx context.Context) (string, string, error) {
	if err := c.lockIdle(ctx); err != nil {
		return "", "", err
	}
	defer c.mu.Unlock()
	if c.period == nil {
		return "", "", ErrNoPeriod
	}
	return axis.Label(c.scale, c.period.Start)[0], axis.Label(c.scale, c.period.End)[0], nil
}

// Close clears the highlighted period.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.period = nil
}

// Wait blocks until no transition is in flight.
func (c *Controller) Wait(ctx context.Context) error {
	if err := c.lockIdle(ctx); err != nil {
		return err
	}
	c.mu.Unlock()
	return nil
}

// install installs p and starts the transition to its domain. c.mu must be held.
func (c *Controller) install(p Period) *Transition {
	c.period = &p
	tr := &Transition{
		c:      c,
		target: c.scale.WithDomain(p.Start, p.End),
		done:   make(chan struct{}),
	}
	c.inflight = tr
	return tr
}

// lockIdle acquires c.mu once no transition is in flight.
func (c *Controller) lockIdle(ctx context.Context) error {
	for {
		c.mu.Lock()
		tr := c.inflight
		if tr == nil {
			return nil
		}
		c.mu.Unlock()

		select {
		case <-tr.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Transition is a pending change of the shown scale to a period's domain. The host animates
// towards Target and calls Finish when done, or Cancel to keep the old scale.
type Transition struct {
	c      *Controller
	target *axis.TimeScale
	done   chan struct{}
	once   sync.Once
}

// Target returns the scale the transition ends on.
func (t *Transition) Target() *axis.TimeScale { return t.target }

// Done is closed once the transition has finished or been cancelled.
func (t *Transition) Done() <-chan struct{} { return t.done }

// Finish installs the target scale and releases the controller. Repeated calls are no-ops.
func (t *Transition) Finish() { t.end(true) }

// Cancel releases the controller without changing the scale. Repeated calls are no-ops.
func (t *Transition) Cancel() { t.end(false) }

func (t *Transition) end(apply bool) {
	t.once.Do(func() {
		t.c.mu.Lock()
		if apply {
			t.c.scale = t.target
		}
		if t.c.inflight == t {
			t.c.inflight = nil
		}
		t.c.mu.Unlock()
		close(t.done)
	})
}
