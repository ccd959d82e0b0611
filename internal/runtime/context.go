// Package runtime provides application runtime context for Zenith.
package runtime

import (
	"context"

	"github.com/manav03panchal/zenith/internal/config"
	"github.com/manav03panchal/zenith/internal/errors"
	"github.com/manav03panchal/zenith/internal/insight"
	"github.com/manav03panchal/zenith/internal/logging"
	"github.com/manav03panchal/zenith/internal/model"
	"github.com/manav03panchal/zenith/internal/output"
	"github.com/manav03panchal/zenith/internal/storage"
)

// Context holds the application runtime context. It is built once per
// process and passed explicitly to commands and the dashboard.
type Context struct {
	DB        *storage.DB
	Store     *storage.Store
	Requester *insight.Requester
	Formatter *output.Formatter
	Config    *config.RuntimeConfig

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	// Config is used as-is when set; otherwise it is loaded from ConfigPath.
	Config     *config.RuntimeConfig
	ConfigPath string

	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Generator replaces the Gemini client, mainly for tests.
	Generator insight.Generator
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		ConfigPath: config.DefaultPath(),
		Format:     output.FormatCLI,
		ColorMode:  output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(ctx context.Context, opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, errors.NewUserError(err.Error(), "Fix or remove the config file at "+config.DefaultPath())
		}
		cfg = loaded
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     cfg.Storage.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}
	logging.DebugLog("database opened", logging.KeyPath, cfg.Storage.DBPath)

	formatter := output.NewFormatter(nil, cfg.Finance.Currency)
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	if opts.ColorMode != "" {
		formatter.ColorMode = opts.ColorMode
	}

	var requester *insight.Requester
	if opts.Generator != nil {
		requester = insight.New(insight.Options{
			Generator: opts.Generator,
			Model:     cfg.AI.Model,
			Timeout:   cfg.AI.Timeout,
			Currency:  cfg.Finance.Currency,
		})
	} else {
		requester = insight.NewFromConfig(ctx, cfg.AI, cfg.Finance.Currency)
	}

	return &Context{
		DB:        db,
		Store:     storage.NewStore(db),
		Requester: requester,
		Formatter: formatter,
		Config:    cfg,
		Debug:     opts.Debug,
	}, nil
}

type contextKey struct{}

// WithContext returns a copy of parent that carries c.
func WithContext(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey{}, c)
}

// FromContext returns the runtime context carried by ctx, or nil.
func FromContext(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.IsJSON()
}

// Insight requests the insight for domain using the current store contents.
func (c *Context) Insight(ctx context.Context, d model.Domain) string {
	switch d {
	case model.DomainAgenda:
		return c.Requester.Completion(ctx, c.Store.Agenda.Get())
	case model.DomainHighlights:
		return c.Requester.Momentum(ctx, c.Store.Achievements.Get())
	case model.DomainJournal:
		return c.Requester.Journal(ctx, c.Store.Journal.Get())
	case model.DomainFinance:
		return c.Requester.Spending(ctx, c.Store.Transactions.Get())
	}
	return ""
}

// CheckWrite turns a failed store write into a command error.
func (c *Context) CheckWrite(err error, op string) error {
	if err == nil {
		return nil
	}
	err = AsDiskFull(err, op, c.DB.Path())
	if errors.Is(err, errors.ErrDiskFull) {
		return err
	}
	return errors.NewSystemErrorWithOp(op, "cannot save changes", err)
}
