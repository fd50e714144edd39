package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"careeriq/config"
	"careeriq/models"
	"careeriq/services"
	"careeriq/storage"
	"careeriq/utils"
)

// pipeline is the canonical dataset shared by every command for one invocation.
type pipeline struct {
	cfg      *config.Config
	logger   *utils.Logger
	rawCount int
	listings []models.CanonicalListing
}

func newLogger(c *cobra.Command) (*utils.Logger, error) {
	jsonOut, _ := c.Flags().GetBool("json")
	debug, _ := c.Flags().GetBool("debug")

	logger, err := utils.NewLogger(jsonOut, debug)
	if err != nil {
		return nil, errors.Wrap(err, "creating a logger")
	}
	return logger, nil
}

func loadConfig(c *cobra.Command) (*config.Config, error) {
	path, _ := c.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if specs, _ := c.Flags().GetStringSlice("source"); len(specs) > 0 {
		cfg.Sources = make([]storage.Source, 0, len(specs))
		for _, spec := range specs {
			cfg.Sources = append(cfg.Sources, storage.ParseSource(spec))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// prepare loads and canonicalizes every source, then writes the configured sinks.
func prepare(ctx context.Context, cfg *config.Config, logger *utils.Logger) (*pipeline, error) {
	loader := storage.NewLoader(storage.NewSnapshotCache(), logger, cfg.Loader.Workers)
	raw, err := loader.LoadAll(ctx, cfg.Sources)
	if err != nil {
		return nil, err
	}

	p := &pipeline{
		cfg:      cfg,
		logger:   logger,
		rawCount: len(raw),
		listings: services.NewCleaner(logger).Clean(raw),
	}
	if len(p.listings) == 0 {
		logger.Warn("[pipeline] All listings were dropped during canonicalization")
	}

	if cfg.Output.Canonical != "" {
		if err := p.writeCanonical(ctx); err != nil {
			return nil, err
		}
	}

	if cfg.Postgres.Enabled {
		if err := p.persist(ctx); err != nil {
			logger.Error("[pipeline] PostgreSQL write failed, continuing with in-memory snapshot: %v", err)
		}
	}

	return p, nil
}

func (p *pipeline) writeCanonical(ctx context.Context) error {
	w, err := storage.NewCSVWriter(p.cfg.Output.Canonical, models.AllExportColumns)
	if err != nil {
		return err
	}
	if err := writeAndClose(ctx, w, p.listings); err != nil {
		return errors.Wrap(err, "write canonical csv")
	}
	p.logger.Info("[pipeline] Canonical dataset saved to %s", p.cfg.Output.Canonical)
	return nil
}

func (p *pipeline) persist(ctx context.Context) error {
	retry := utils.RetryConfig{
		MaxAttempts: p.cfg.Postgres.MaxRetries,
		BaseDelay:   time.Second,
		Logger:      p.logger,
	}
	pw, err := storage.NewPostgresWriter(ctx, p.cfg.DSN(), retry, p.logger)
	if err != nil {
		return err
	}
	defer pw.Close()

	if err := pw.Write(ctx, p.listings); err != nil {
		return err
	}
	p.reload(ctx, pw)
	return nil
}

// reload swaps in the stored snapshot so insights reflect what was persisted.
func (p *pipeline) reload(ctx context.Context, r storage.ListingReader) {
	stored, err := r.FetchAll(ctx)
	if err != nil {
		p.logger.Warn("[pipeline] Failed to read back stored listings: %v", err)
		return
	}
	p.listings = stored
}

func writeAndClose(ctx context.Context, w storage.ListingWriter, listings []models.CanonicalListing) error {
	werr := w.Write(ctx, listings)
	cerr := w.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// scopeFromFlags builds the consumer scope. Unknown roles and bands are rejected.
func scopeFromFlags(c *cobra.Command) (services.Scope, error) {
	var scope services.Scope

	roles, _ := c.Flags().GetStringSlice("role")
	for _, label := range roles {
		role, err := models.ParseRoleCategory(strings.TrimSpace(label))
		if err != nil {
			return services.Scope{}, err
		}
		scope.Roles = append(scope.Roles, role)
	}

	locations, _ := c.Flags().GetStringSlice("location")
	for _, loc := range locations {
		if city := services.NormalizeLocation(loc); city != "" {
			scope.Locations = append(scope.Locations, city)
		}
	}

	bands, _ := c.Flags().GetStringSlice("experience")
	for _, label := range bands {
		band, err := models.ParseExperienceBand(strings.TrimSpace(label))
		if err != nil {
			return services.Scope{}, err
		}
		scope.Bands = append(scope.Bands, band)
	}

	return scope, nil
}

// setup runs the shared preamble: logger, config, scope and the canonical dataset.
func setup(c *cobra.Command) (*pipeline, services.Scope, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, services.Scope{}, err
	}

	scope, err := scopeFromFlags(c)
	if err != nil {
		return nil, services.Scope{}, err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, services.Scope{}, err
	}

	p, err := prepare(c.Context(), cfg, logger)
	if err != nil {
		return nil, services.Scope{}, err
	}
	return p, scope, nil
}
