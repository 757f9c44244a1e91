// Command searchd is a long-running daemon that runs a scheduled batch
// of rating-search runs on a cron expression, writing each run's
// outcome to the run archive — an unattended, repeatable entry point
// for the "tens of thousands of simulated seasons" workload spec.md §1
// describes, grounded in the teacher's always-on cron-driven services.
package main

import (
	"encoding/json"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/soccer-sim/internal/ioadapters"
	"github.com/jstittsworth/soccer-sim/internal/league"
	"github.com/jstittsworth/soccer-sim/internal/search"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
	"github.com/jstittsworth/soccer-sim/pkg/config"
	"github.com/jstittsworth/soccer-sim/pkg/logging"
	"github.com/jstittsworth/soccer-sim/pkg/ratecache"
	"github.com/jstittsworth/soccer-sim/pkg/ratelimit"
	"github.com/jstittsworth/soccer-sim/pkg/runstore"
)

const (
	demoTeams          = 20
	demoPlayersPerTeam = 22
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logging.Init(cfg.LogLevel, cfg.IsDevelopment())
	log := logging.Get()

	store, err := runstore.Open(cfg.RunStorePath, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("failed to open run store: %v", err)
	}
	defer store.Close()

	cache := ratecache.Connect(cfg.RedisURL)
	limiter := ratelimit.New(cfg.ProgressRateLimitHz)

	c := cron.New()
	_, err = c.AddFunc(cfg.SearchdCron, func() { runSearchBatch(cfg, store, cache, limiter) })
	if err != nil {
		logrus.Fatalf("invalid SEARCHD_CRON expression %q: %v", cfg.SearchdCron, err)
	}
	c.Start()
	log.WithField("cron", cfg.SearchdCron).Info("searchd started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("searchd shutting down")
	<-c.Stop().Done()
}

func runSearchBatch(cfg *config.Config, store *runstore.Store, cache *ratecache.Cache, limiter *ratelimit.Limiter) {
	log := logging.Get()

	seedRNG := rand.New(rand.NewSource(cfg.RootSeed))
	teams, rosters := ioadapters.SeedDemoLeague(demoTeams, demoPlayersPerTeam, seedRNG)
	baseline := league.InitLeague(teams, rosters, tactics.DefaultTable(), cfg.RootSeed)
	baseline.PlaySeason()

	engine := search.New(baseline, search.Config{
		NReps:      cfg.NReps,
		NSteps:     cfg.NSteps,
		Thresh0:    cfg.Thresh0,
		ThreshD:    cfg.ThreshD,
		StepSize0:  cfg.StepSize0,
		StaleLimit: cfg.StaleLimit,
	}, cfg.RootSeed, store, cache, limiter)

	initial := engine.PercentileInit()
	best, rmse := engine.Run(initial, ioadapters.NoopProgressReporter{})

	log.WithField("search_run_id", engine.SearchRunID).WithField("rmse", rmse).Info("search batch complete")

	ratingsJSON, err := json.Marshal(best)
	if err != nil {
		log.WithError(err).Warn("failed to marshal best ratings")
		return
	}
	if err := store.UpsertBest(runstore.BestSnapshot{
		SearchRunID: engine.SearchRunID,
		Step:        cfg.NSteps,
		RMSE:        rmse,
		RatingsJSON: string(ratingsJSON),
	}); err != nil {
		log.WithError(err).Warn("failed to persist best snapshot")
	}
}
