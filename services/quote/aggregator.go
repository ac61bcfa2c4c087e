package quote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"shipquote/models"
	"shipquote/services/pricing"

	"go.uber.org/zap"
)

// Aggregator fans a quote request out to every configured carrier, tolerates
// each of them failing independently, and assembles a badged, cacheable result.
// Construct it explicitly in main and share it freely; it holds no per-request
// state.
type Aggregator struct {
	Providers     []pricing.Provider
	Cache         QuoteCache
	CacheTTL      time.Duration
	CallTimeout   time.Duration
	SurchargeRate float64
	Logger        *zap.Logger

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// outcome is one provider's settled result: a quote or a failure, never both.
type outcome struct {
	quote models.Quote
	err   error
}

// Aggregate returns the quotes of every carrier that answered within its own
// deadline, plus one diagnostic message per carrier that did not. It never
// fails as a whole: a total carrier outage is an empty quote list with full
// diagnostics.
func (a *Aggregator) Aggregate(ctx context.Context, req models.QuoteRequest) ([]models.Quote, []models.ProviderMessage) {
	fp := Fingerprint(req)
	now := a.now()

	if cached := a.lookupCache(ctx, fp, now); cached != nil {
		a.Logger.Debug("quote cache hit", zap.String("fingerprint", fp))
		return cached, []models.ProviderMessage{}
	}
	a.Logger.Debug("quote cache miss", zap.String("fingerprint", fp))

	outcomes := a.fanOut(ctx, req)
	quotes, messages := a.collect(outcomes)

	if req.Fragile && len(quotes) > 0 {
		for i := range quotes {
			quotes[i].Price *= a.SurchargeRate
		}
		a.Logger.Debug("fragile surcharge applied",
			zap.Float64("rate", a.SurchargeRate),
			zap.Int("quotes", len(quotes)))
	}

	quotes = pricing.AssignBadges(quotes)

	if len(quotes) > 0 {
		if err := a.Cache.Put(ctx, fp, quotes, now); err != nil {
			a.Logger.Warn("quote cache write failed",
				zap.String("fingerprint", fp), zap.Error(err))
		}
	}

	return quotes, messages
}

// lookupCache returns still-fresh cached quotes, or nil on miss, staleness, or
// any cache error. The cache never fails a request.
func (a *Aggregator) lookupCache(ctx context.Context, fingerprint string, now time.Time) []models.Quote {
	set, err := a.Cache.Get(ctx, fingerprint)
	if err != nil {
		a.Logger.Warn("quote cache read failed, treating as miss",
			zap.String("fingerprint", fingerprint), zap.Error(err))
		return nil
	}
	if set == nil {
		return nil
	}
	if now.Sub(set.CreatedAt) >= a.CacheTTL {
		return nil
	}
	return set.Quotes
}

// fanOut launches one call per provider, each bounded by its own timeout.
// Every slot settles: a provider that ignores its context is abandoned at the
// deadline and any late result is discarded.
func (a *Aggregator) fanOut(ctx context.Context, req models.QuoteRequest) []outcome {
	outcomes := make([]outcome, len(a.Providers))
	var wg sync.WaitGroup

	for i, p := range a.Providers {
		wg.Add(1)
		go func(i int, p pricing.Provider) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, a.CallTimeout)
			defer cancel()

			done := make(chan outcome, 1)
			go func() {
				q, err := p.Quote(callCtx, req.WeightKg, req.Destination)
				done <- outcome{quote: q, err: err}
			}()

			select {
			case out := <-done:
				outcomes[i] = out
			case <-callCtx.Done():
				outcomes[i] = outcome{err: fmt.Errorf("no response within %s: %w", a.CallTimeout, callCtx.Err())}
			}
		}(i, p)
	}

	wg.Wait()
	return outcomes
}

// collect partitions settled outcomes into quotes and diagnostics, preserving
// provider registration order among the successes.
func (a *Aggregator) collect(outcomes []outcome) ([]models.Quote, []models.ProviderMessage) {
	quotes := make([]models.Quote, 0, len(outcomes))
	messages := make([]models.ProviderMessage, 0)

	for i, out := range outcomes {
		if out.err == nil {
			quotes = append(quotes, out.quote)
			continue
		}

		name := a.providerDisplayName(i)
		if errors.Is(out.err, context.DeadlineExceeded) || errors.Is(out.err, context.Canceled) {
			a.Logger.Warn("provider unavailable",
				zap.String("provider", name), zap.Error(out.err))
		} else {
			// Non-timeout failures include invalid quote construction, which
			// points at a carrier integration bug.
			a.Logger.Error("provider returned an invalid or failed quote",
				zap.String("provider", name), zap.Error(out.err))
		}

		messages = append(messages, models.ProviderMessage{
			Provider: name,
			Message:  fmt.Sprintf("%s is currently unavailable", name),
			Error:    out.err.Error(),
		})
	}

	return quotes, messages
}

// providerDisplayName falls back to a positional label when a carrier cannot
// report its own identity.
func (a *Aggregator) providerDisplayName(i int) string {
	if i >= 0 && i < len(a.Providers) {
		if name := a.Providers[i].Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("provider #%d", i+1)
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
