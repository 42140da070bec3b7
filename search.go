package netauto

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Forever disables the search deadline entirely: the poller keeps issuing
// native find calls until a result appears, however long that takes.
const Forever = time.Duration(math.MaxInt64)

// DefaultInterval is the pause between native find calls.
const DefaultInterval = 100 * time.Millisecond

// DefaultWaitTimeout bounds WaitUnavailable when no timeout is given.
const DefaultWaitTimeout = 30 * time.Second

// FindOptions tunes a FindElement / FindElements search.
type FindOptions struct {
	// Where is ANDed with the Props passed to Find*. Either may be empty.
	Where *Condition

	// Scope selects which relatives of the root element are searched.
	// Zero means ScopeDescendants.
	Scope TreeScope

	// Timeout is the minimum time to keep retrying an empty search.
	// Zero grants no grace period; Forever removes the bound.
	Timeout time.Duration

	// MinSearches is the minimum number of native find calls to issue
	// before giving up, regardless of Timeout. Values below 1 mean 1.
	MinSearches int

	// Interval is the pause between find calls. Zero means
	// DefaultInterval.
	Interval time.Duration
}

func (o FindOptions) normalized() FindOptions {
	if o.Scope == 0 {
		o.Scope = ScopeDescendants
	}
	if o.MinSearches < 1 {
		o.MinSearches = 1
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	return o
}

// FindElement searches below e for the first element matching props and
// opts.Where. The search is retried until it yields results or both the
// timeout has elapsed and MinSearches calls have been issued; exhaustion
// returns *ElementNotFoundError.
func (e *Element) FindElement(props Props, opts FindOptions) (*Element, error) {
	results, searches, err := e.search(props, opts)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, &ElementNotFoundError{
			Condition: describe(props, opts.Where),
			Searches:  searches,
		}
	}
	return results[0], nil
}

// FindElements is FindElement returning every match. Exhaustion yields an
// empty slice, not an error.
func (e *Element) FindElements(props Props, opts FindOptions) ([]*Element, error) {
	results, _, err := e.search(props, opts)
	return results, err
}

// search runs the polling loop: one native find per iteration, finishing
// as soon as a pass returns results and at least MinSearches passes have
// run, or exhausting once the deadline has passed and MinSearches is met.
func (e *Element) search(props Props, opts FindOptions) ([]*Element, int, error) {
	opts = opts.normalized()

	cond, err := NewCondition(props)
	if err != nil {
		return nil, 0, err
	}
	if opts.Where != nil {
		cond = cond.And(opts.Where)
	}
	translated, err := cond.translate(e.backend)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	var deadline time.Time
	if opts.Timeout != Forever {
		deadline = start.Add(opts.Timeout)
	}

	searches := 0
	for {
		handles, err := e.backend.FindAll(e.handle, opts.Scope, translated)
		if err != nil {
			return nil, searches, err
		}
		searches++

		if len(handles) > 0 && searches >= opts.MinSearches {
			log.Debug("search found",
				zap.String("condition", cond.String()),
				zap.Int("results", len(handles)),
				zap.Int("searches", searches),
				zap.Duration("elapsed", time.Since(start)))
			out := make([]*Element, len(handles))
			for i, h := range handles {
				out[i] = &Element{backend: e.backend, handle: h}
			}
			return out, searches, nil
		}

		expired := !deadline.IsZero() && !time.Now().Before(deadline)
		if expired && searches >= opts.MinSearches {
			log.Debug("search exhausted",
				zap.String("condition", cond.String()),
				zap.Int("searches", searches),
				zap.Duration("elapsed", time.Since(start)))
			return nil, searches, nil
		}

		time.Sleep(opts.Interval)
	}
}

// WaitOptions tunes WaitUnavailable.
type WaitOptions struct {
	// Timeout bounds the wait. Zero means DefaultWaitTimeout.
	Timeout time.Duration

	// KeepOffscreen treats an element that still exists but is offscreen
	// as available. By default offscreen counts as gone, matching the
	// usual "window finished closing" use.
	KeepOffscreen bool

	// Interval is the pause between polls. Zero means DefaultInterval.
	Interval time.Duration
}

// WaitUnavailable polls until the element disappears, reporting true, or
// the timeout elapses, reporting false. Timing out is a normal outcome,
// not an error; native read failures count as the element being gone.
func (e *Element) WaitUnavailable(opts WaitOptions) bool {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultWaitTimeout
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	start := time.Now()
	deadline := start.Add(opts.Timeout)
	for {
		if e.unavailable(opts.KeepOffscreen) {
			log.Debug("element gone", zap.Duration("elapsed", time.Since(start)))
			return true
		}
		if !time.Now().Before(deadline) {
			log.Debug("element still available at timeout",
				zap.Duration("elapsed", time.Since(start)))
			return false
		}
		time.Sleep(opts.Interval)
	}
}

func (e *Element) unavailable(keepOffscreen bool) bool {
	offscreen, err := e.IsOffscreen()
	if err != nil {
		// The handle went stale; the element no longer exists.
		return true
	}
	return offscreen && !keepOffscreen
}
