package praise

import "time"

// Policy is the retry/backoff schedule, kept free of side effects so it
// can be tested as plain data: attempt n (zero-based) waits Delay(n)
// before attempt n+1.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultPolicy matches the provider's quota recovery behavior: three
// attempts total with delays doubling from two seconds.
var DefaultPolicy = Policy{MaxAttempts: 3, BaseDelay: 2 * time.Second}

// Delay returns the backoff before the attempt following attempt n.
func (p Policy) Delay(attempt int) time.Duration {
	return p.BaseDelay << attempt
}
