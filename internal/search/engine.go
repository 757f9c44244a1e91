package search

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/soccer-sim/internal/ioadapters"
	"github.com/jstittsworth/soccer-sim/internal/league"
	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/sched"
	"github.com/jstittsworth/soccer-sim/pkg/logging"
	"github.com/jstittsworth/soccer-sim/pkg/ratecache"
	"github.com/jstittsworth/soccer-sim/pkg/ratelimit"
	"github.com/jstittsworth/soccer-sim/pkg/runstore"
)

func logStepFields(step int, rmse float64, accepted, restarted bool, thresh float64, stepsize int) logrus.Fields {
	return logrus.Fields{
		"step":      step,
		"rmse":      rmse,
		"accepted":  accepted,
		"restarted": restarted,
		"thresh":    thresh,
		"stepsize":  stepsize,
	}
}

// Config holds the rating-search hyperparameters spec.md §4.9 names.
type Config struct {
	NReps      int
	NSteps     int
	Thresh0    float64
	ThreshD    float64
	StepSize0  int
	StaleLimit int
}

// Engine owns a baseline league and nreps replica leagues that share
// the baseline's structural roster data (spec.md §4.9, §9: replicas
// are memcpy'd plain-old-data, never reference-shared).
type Engine struct {
	Baseline    *league.League
	Replicas    []*league.League
	Cfg         Config
	RootSeed    int64
	SearchRunID string

	store   *runstore.Store
	cache   *ratecache.Cache
	limiter *ratelimit.Limiter
}

// New builds nreps replicas of baseline: same team vector and schedule,
// independent deep-copied rosters.
func New(baseline *league.League, cfg Config, rootSeed int64, store *runstore.Store, cache *ratecache.Cache, limiter *ratelimit.Limiter) *Engine {
	replicas := make([]*league.League, cfg.NReps)
	for i := range replicas {
		rosters := make([]model.Roster, len(baseline.Rosters))
		copy(rosters, baseline.Rosters)
		replicas[i] = league.InitLeague(baseline.Teams, rosters, baseline.Tactics, rootSeed+int64(i)*1_000_000)
	}
	return &Engine{
		Baseline:    baseline,
		Replicas:    replicas,
		Cfg:         cfg,
		RootSeed:    rootSeed,
		SearchRunID: uuid.NewString(),
		store:       store,
		cache:       cache,
		limiter:     limiter,
	}
}

// resetReplicaSeason zeroes a replica's standings and every
// non-placeholder player's season-accumulated stats ahead of a fresh
// play_season, so successive steps don't compound across restarts.
func resetReplicaSeason(l *league.League) {
	l.ResetAll()
	for t := range l.Rosters {
		for i := range l.Rosters[t].Players {
			p := &l.Rosters[t].Players[i]
			if p.IsPlaceholder() {
				continue
			}
			p.Gam, p.Sav, p.Ktk, p.Kps, p.Sht, p.Gls, p.Ass = 0, 0, 0, 0, 0, 0, 0
			p.DP, p.Inj, p.Sus = 0, 0, 0
			p.Fit = 100
		}
	}
}

// PercentileInit computes (or fetches from the optional baseline
// cache) the percentile-initialized RatingSet for the engine's
// baseline league (spec.md §4.9), keyed by a hash of its season-end
// stats so repeated restarts against the same baseline skip the CDF
// recomputation.
func (e *Engine) PercentileInit() RatingSet {
	ctx := context.Background()
	key := ratecache.PercentileInitKey(baselineStatsHash(e.Baseline))

	var cached RatingSet
	if hit, err := e.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached
	}

	rs := PercentileRatings(e.Baseline)
	_ = e.cache.Set(ctx, key, rs, time.Hour)
	return rs
}

func baselineStatsHash(l *league.League) uint64 {
	h := fnv.New64a()
	for _, r := range l.Rosters {
		for _, p := range r.Players {
			fmt.Fprintf(h, "%s:%d:%d:%d:%d:", p.Name, p.Sav, p.Ktk, p.Kps, p.Sht)
		}
	}
	return h.Sum64()
}

// Run executes the threshold-acceptance loop starting from initial
// ratings, reporting progress through reporter (rate-limited) and
// recording every step to the run archive if one is configured.
// Returns the best-found ratings and their RMSE.
func (e *Engine) Run(initial RatingSet, reporter ioadapters.ProgressReporter) (RatingSet, float64) {
	log := logging.WithSearchRun(e.SearchRunID)
	rng := rand.New(rand.NewSource(e.RootSeed))

	current := initial
	simsLast := initial.Clone()
	simsBest := initial.Clone()
	rmseLast := math.Inf(1)
	rmseBest := math.Inf(1)
	thresh := e.Cfg.Thresh0
	stepsize := e.Cfg.StepSize0
	stale := 0

	for step := 1; step <= e.Cfg.NSteps; step++ {
		for _, rep := range e.Replicas {
			resetReplicaSeason(rep)
			current.Apply(rep.Rosters)
		}

		sched.Run(sched.ModeComposable, len(e.Replicas), func(i int) {
			e.Replicas[i].PlaySeason()
		})

		rmse := RMSE(e.Baseline, e.Replicas)
		if math.IsNaN(rmse) {
			rmse = math.Inf(1) // non-finite RMSE is treated as a rejection (spec.md §7)
		}

		accepted := rmse < rmseLast+thresh
		restarted := false

		if accepted {
			if rmse < rmseBest && step > 1 {
				simsBest = current.Clone()
				rmseBest = rmse
			}
			rmseLast = rmse
			simsLast = current.Clone()
			thresh = math.Max(thresh-e.Cfg.ThreshD, 0.001)
			current = Perturb(current, e.Baseline.Rosters, stepsize, rng)
			stale = 0
		} else {
			current = Perturb(simsLast, e.Baseline.Rosters, stepsize, rng)
			if stepsize > 1 {
				stepsize--
			}
			stale++
			if stale >= e.Cfg.StaleLimit {
				current = simsBest.Clone()
				thresh = e.Cfg.Thresh0
				stepsize = e.Cfg.StepSize0
				rmseLast = math.Inf(1)
				stale = 0
				restarted = true
			}
		}

		log.WithFields(logStepFields(step, rmse, accepted, restarted, thresh, stepsize)).Info("rating-search step")

		if e.store != nil {
			_ = e.store.RecordStep(runstore.StepRecord{
				SearchRunID: e.SearchRunID,
				Step:        step,
				RMSE:        rmse,
				Accepted:    accepted,
				Restarted:   restarted,
				Thresh:      thresh,
				StepSize:    stepsize,
			})
		}

		if e.limiter.Allow() && reporter != nil {
			reporter.Report("rating-search", step, e.Cfg.NSteps)
		}
	}

	return simsBest, rmseBest
}
