package cli

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"internship-engine/internal/actions"
	"internship-engine/internal/config"
	"internship-engine/internal/domain"
	"internship-engine/internal/listing"
	"internship-engine/internal/readme"
	"internship-engine/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Regenerate the summer and off-season README tables",
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	return renderDocuments(cmd.Context(), cfg, func() time.Time { return time.Now().In(loc) })
}

func renderDocuments(ctx context.Context, cfg config.Config, now func() time.Time) error {
	listings, err := listing.LoadFile(cfg.Listings.Path)
	var schemaErr *listing.SchemaError
	if errors.As(err, &schemaErr) {
		return actions.Fail(schemaErr.Error())
	}
	if err != nil {
		return err
	}

	sorted := listing.Sort(listings)
	summer := listing.FilterSeason(sorted, cfg.Season.Year, cfg.Season.EarliestDate, cfg.Season.BlockedCompanies)
	offSeason := listing.FilterOffSeason(sorted)
	log.Printf("[render] listings=%d summer=%d off_season=%d", len(listings), len(summer), len(offSeason))

	renderer := render.New(renderOptions(cfg, now))
	summerOpts := readmeOptions(cfg)
	offOpts := readme.OffSeason(summerOpts)

	var summerStats, offStats readme.Stats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := composeOne(ctx, readme.NewComposer(summerOpts, renderer, now), cfg.Render.ReadmePath, summer)
		summerStats = st
		return err
	})
	g.Go(func() error {
		st, err := composeOne(ctx, readme.NewComposer(offOpts, renderer, now), cfg.Render.OffSeasonPath, offSeason)
		offStats = st
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := actions.SetOutput("summer_rows", strconv.Itoa(summerStats.Rows)); err != nil {
		return err
	}
	return actions.SetOutput("off_season_rows", strconv.Itoa(offStats.Rows))
}

func composeOne(ctx context.Context, c *readme.Composer, path string, listings []domain.Listing) (readme.Stats, error) {
	st, err := c.ComposeFile(ctx, path, listings)
	if err != nil {
		return st, err
	}
	if st.Warning {
		log.Printf("[render] file=%s bytes=%d exceeds preview limit; cutoff warning inserted", path, st.Bytes)
	}
	return st, nil
}

func renderOptions(cfg config.Config, now func() time.Time) render.Options {
	ro := render.DefaultOptions()
	ro.Provider = cfg.Staleness.Provider
	if len(cfg.Render.TopTier) > 0 {
		ro.TopTier = cfg.Render.TopTier
	}
	ro.Now = now
	return ro
}

func readmeOptions(cfg config.Config) readme.Options {
	return readme.Options{
		FileName:    "README.md",
		RepoBlobURL: cfg.Render.RepoBlobURL,
		TopAnchor:   cfg.Render.TopAnchor,
		FullListURL: cfg.Render.FullListURL,
		MoreJobsURL: cfg.Render.MoreJobsURL,
		SizeLimit:   cfg.Render.SizeLimit,
		SizeBuffer:  cfg.Render.SizeBuffer,
		Thresholds: listing.Thresholds{
			Provider:       cfg.Staleness.Provider,
			ProviderMonths: cfg.Staleness.ProviderMonths,
			OtherMonths:    cfg.Staleness.OtherMonths,
		},
	}
}
