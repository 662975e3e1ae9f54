package praise

import (
	"context"
	"strings"
	"time"

	"github.com/ahmetunaluzun/beni-ov/internal/models"
)

// DefaultGenerationConfig is the sampling configuration used for praise.
var DefaultGenerationConfig = GenerationConfig{Temperature: 0.9, TopP: 0.95, TopK: 40}

// RetryHook observes a quota failure about to be retried. It must not
// block; it exists so retry behavior stays testable without inline
// logging in the control flow.
type RetryHook func(attempt int, delay time.Duration, err error)

// Generator produces praise text for a profile. It is purely functional
// with respect to local state; the network call is its only effect.
type Generator struct {
	invoker Invoker
	policy  Policy
	config  GenerationConfig
	onRetry RetryHook
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewGenerator(invoker Invoker) *Generator {
	return &Generator{
		invoker: invoker,
		policy:  DefaultPolicy,
		config:  DefaultGenerationConfig,
		sleep:   sleepCtx,
	}
}

// WithRetryHook installs the observability callback for retried attempts.
func (g *Generator) WithRetryHook(hook RetryHook) *Generator {
	g.onRetry = hook
	return g
}

// Generate builds the prompt for the profile, invokes the provider and
// returns the trimmed text. Quota failures are retried per the policy;
// any other failure is surfaced unchanged on the first occurrence. When
// every attempt exhausts against quota errors the caller receives a
// RateLimitedError carrying the suggested cooldown.
//
// recentTexts (favorites plus the praise currently on screen) are woven
// into the prompt as a negative constraint; the returned text is trusted
// to honor it and the per-style shape, with no local validation.
func (g *Generator) Generate(ctx context.Context, profile models.Profile, recentTexts []string) (string, error) {
	prompt := BuildPrompt(profile, recentTexts)

	for attempt := 0; attempt < g.policy.MaxAttempts; attempt++ {
		text, err := g.invoker.Invoke(ctx, prompt, SystemInstruction, g.config)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		if !IsQuotaError(err) {
			return "", err
		}
		if attempt == g.policy.MaxAttempts-1 {
			break
		}
		delay := g.policy.Delay(attempt)
		if g.onRetry != nil {
			g.onRetry(attempt, delay, err)
		}
		if err := g.sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	return "", &RateLimitedError{Attempts: g.policy.MaxAttempts, Cooldown: 90 * time.Second}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
