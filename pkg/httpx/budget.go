package httpx

import (
	"net/http"
	"sync"
	"time"

	"github.com/quorumhq/quorum/pkg/slogx"
)

// Budget bounds how often an action may happen per key: Points spends within
// a fixed Window, then Block once the budget is exhausted.
type Budget struct {
	Points int
	Window time.Duration
	Block  time.Duration
}

// BudgetMode selects when a point is spent.
type BudgetMode int

const (
	// ModeAttempt spends a point on every request.
	ModeAttempt BudgetMode = iota
	// ModeSuccess spends a point only when the wrapped handler answers
	// with a status below 400. Exhaustion still blocks further attempts.
	ModeSuccess
)

type budgetEntry struct {
	count       int
	windowStart time.Time
	blockedTill time.Time
}

// BudgetLimiter tracks fixed-window counters per key. Counters are shared
// mutable state; the mutex makes increments atomic per key, and no cross-key
// coordination exists or is needed.
type BudgetLimiter struct {
	cfg  Budget
	mode BudgetMode

	mu      sync.Mutex
	entries map[string]*budgetEntry

	now func() time.Time // overridable for tests
}

// NewBudgetLimiter returns a limiter enforcing cfg in the given mode.
func NewBudgetLimiter(cfg Budget, mode BudgetMode) *BudgetLimiter {
	return &BudgetLimiter{
		cfg:     cfg,
		mode:    mode,
		entries: make(map[string]*budgetEntry),
		now:     time.Now,
	}
}

func (l *BudgetLimiter) entry(key string, now time.Time) *budgetEntry {
	e, ok := l.entries[key]
	if !ok {
		e = &budgetEntry{windowStart: now}
		l.entries[key] = e
	}
	if now.Sub(e.windowStart) >= l.cfg.Window {
		e.count = 0
		e.windowStart = now
	}
	return e
}

// Allow reports whether the action may proceed for key. In attempt mode the
// point is spent here; in success mode call Spend after a favorable outcome.
// When denied, retryAfter is the positive duration until the key unblocks.
func (l *BudgetLimiter) Allow(key string) (retryAfter time.Duration, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e := l.entry(key, now)

	if now.Before(e.blockedTill) {
		return e.blockedTill.Sub(now), false
	}

	if e.count >= l.cfg.Points {
		e.blockedTill = now.Add(l.cfg.Block)
		return l.cfg.Block, false
	}

	if l.mode == ModeAttempt {
		e.count++
		if e.count >= l.cfg.Points {
			e.blockedTill = now.Add(l.cfg.Block)
		}
	}

	return 0, true
}

// Spend records a favorable outcome for key. Only meaningful in success
// mode; once the budget is spent the key is blocked for the block duration.
func (l *BudgetLimiter) Spend(key string) {
	if l.mode != ModeSuccess {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e := l.entry(key, now)
	e.count++
	if e.count >= l.cfg.Points {
		e.blockedTill = now.Add(l.cfg.Block)
	}
}

// BudgetMiddleware enforces a budget limiter around a handler. The action
// name namespaces keys so independent endpoints never share budgets.
func BudgetMiddleware(action string, limiter *BudgetLimiter, keyExtractor KeyExtractor) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				log.Warn("budget limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}
			key = action + ":" + key

			retryAfter, ok := limiter.Allow(key)
			if !ok {
				seconds := max(int(retryAfter.Seconds()), 1)

				log.Warn("budget exhausted",
					"action", action,
					"key", key,
					"retry_after", seconds,
				)

				WriteError(w, &APIError{
					Status:     http.StatusTooManyRequests,
					Type:       ErrorTypeRateLimited,
					Message:    "rate limit exceeded for this action",
					RetryAfter: seconds,
				})
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status < 400 {
				limiter.Spend(key)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
