package insight

import (
	"context"
	"strings"
	"time"

	"github.com/manav03panchal/zenith/internal/config"
	"github.com/manav03panchal/zenith/internal/logging"
	"github.com/manav03panchal/zenith/internal/model"
)

// Static replies returned instead of a generated insight.
const (
	MsgNotConfigured   = "API Key not configured. Please set up your API key to use AI features."
	MsgServiceError    = "There was an error communicating with the AI. Please check the logs for details."
	MsgNoTasks         = "Add some tasks to your agenda to get completion insights."
	MsgNoAchievements  = "Log some achievements to get momentum insights."
	MsgNoNotes         = "Write some notes in your journal to get a reflection summary."
	MsgFewTransactions = "Log more transactions for detailed spending insights."
)

// MinTransactions is the fewest transactions a spending insight needs.
const MinTransactions = 2

// Options configures a Requester.
type Options struct {
	// Generator performs the network call. Nil means credentials are missing.
	Generator Generator
	// Model is reported in call events.
	Model string
	// Timeout bounds each call. Zero means no extra deadline.
	Timeout time.Duration
	// Currency is used to display amounts in spending prompts.
	Currency string
	// Observer receives call events. Nil uses LogObserver.
	Observer Observer
}

// Requester builds prompts from domain snapshots and forwards them to the
// generator. Its methods never fail: problems become static replies.
type Requester struct {
	gen      Generator
	model    string
	timeout  time.Duration
	currency string
	observer Observer
}

// New creates a Requester.
func New(opts Options) *Requester {
	if opts.Observer == nil {
		opts.Observer = LogObserver{}
	}
	return &Requester{
		gen:      opts.Generator,
		model:    opts.Model,
		timeout:  opts.Timeout,
		currency: opts.Currency,
		observer: opts.Observer,
	}
}

// NewFromConfig creates a Requester backed by Gemini. Missing credentials are
// reported once here; the returned Requester then answers every call with
// MsgNotConfigured.
func NewFromConfig(ctx context.Context, cfg config.AIConfig, currency string) *Requester {
	opts := Options{
		Model:    cfg.Model,
		Timeout:  cfg.Timeout,
		Currency: currency,
	}

	if !cfg.Configured() {
		logging.Warn("API key is not set; AI insights are disabled")
		return New(opts)
	}

	gen, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		logging.Error("cannot create Gemini client", logging.KeyError, err)
		return New(opts)
	}
	logging.DebugLog("insights enabled",
		logging.KeyModel, cfg.Model,
		"api_key", cfg.APIKey)

	opts.Generator = gen
	return New(opts)
}

// Configured reports whether a generator is available.
func (r *Requester) Configured() bool {
	return r.gen != nil
}

// Completion returns a suggestion based on agenda completion.
func (r *Requester) Completion(ctx context.Context, items []model.AgendaItem) string {
	if len(items) == 0 {
		return MsgNoTasks
	}
	return r.ask(ctx, model.DomainAgenda, CompletionPrompt(items))
}

// Momentum returns an encouraging note about today's highlights.
func (r *Requester) Momentum(ctx context.Context, achievements []model.Achievement) string {
	if len(model.FilledAchievements(achievements)) == 0 {
		return MsgNoAchievements
	}
	return r.ask(ctx, model.DomainHighlights, MomentumPrompt(achievements))
}

// Journal returns a reflection on the journal entry.
func (r *Requester) Journal(ctx context.Context, entry model.JournalEntry) string {
	if !entry.HasNotes() {
		return MsgNoNotes
	}
	return r.ask(ctx, model.DomainJournal, JournalPrompt(entry))
}

// Spending returns a spending insight.
func (r *Requester) Spending(ctx context.Context, txs []model.Transaction) string {
	if len(txs) < MinTransactions {
		return MsgFewTransactions
	}
	return r.ask(ctx, model.DomainFinance, SpendingPrompt(txs, r.currency))
}

func (r *Requester) ask(ctx context.Context, domain model.Domain, prompt string) string {
	if r.gen == nil {
		return MsgNotConfigured
	}

	ctx = logging.EnsureCallID(ctx)
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logging.FromContext(ctx).Debug("requesting insight",
		logging.KeyDomain, domain, logging.KeyCount, len(prompt))
	start := time.Now()
	text, err := r.gen.Generate(ctx, prompt)
	text = strings.TrimSpace(text)
	if err == nil && text == "" {
		err = ErrEmptyResponse
	}

	r.observer.OnCallComplete(CallEvent{
		Domain:  domain,
		Model:   r.model,
		CallID:  logging.CallID(ctx),
		Latency: time.Since(start),
		Err:     err,
	})

	if err != nil {
		return MsgServiceError
	}
	return text
}
