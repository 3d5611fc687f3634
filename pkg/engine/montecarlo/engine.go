package montecarlo

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/cashflow"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/finmetrics"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Engine runs randomized NPV trials and summarizes the distribution.
// Trials are independent, so they are spread across workers; each worker
// draws from its own PCG stream derived from the seed and worker index,
// which makes a run reproducible for a fixed (seed, workers) pair.
type Engine struct {
	projector *cashflow.Projector
}

// New creates a Monte Carlo engine
func New(projector *cashflow.Projector) *Engine {
	return &Engine{projector: projector}
}

// Run executes cfg.Trials randomized trials against the base projection.
// When cfg.Seed is zero a clock-derived seed is used and reported back in
// the result; callers needing reproducible output must supply a seed.
func (e *Engine) Run(ctx context.Context, base cashflow.Projection, discountRate float64, cfg config.TrialConfig) (*model.Distribution, error) {
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid trial config")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	workers := cfg.Workers
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	results := make([]float64, cfg.Trials)

	// Split trials into contiguous chunks, one per worker. The first
	// (trials % workers) chunks take one extra trial.
	chunk := cfg.Trials / workers
	extra := cfg.Trials % workers

	eg, egCtx := errgroup.WithContext(ctx)
	start := 0
	for w := 0; w < workers; w++ {
		size := chunk
		if w < extra {
			size++
		}
		begin, end := start, start+size
		start = end

		rng := rand.New(rand.NewPCG(uint64(seed), uint64(w)))
		eg.Go(func() error {
			for i := begin; i < end; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				npv, err := e.trial(egCtx, base, discountRate, cfg, rng)
				if err != nil {
					return err
				}
				results[i] = npv
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "simulation failed")
	}

	dist := summarize(results)
	dist.Seed = seed
	return dist, nil
}

func (e *Engine) trial(ctx context.Context, base cashflow.Projection, discountRate float64, cfg config.TrialConfig, rng *rand.Rand) (float64, error) {
	benefitMult := math.Max(cfg.MultiplierFloor, 1+cfg.BenefitSigma*rng.NormFloat64())
	costMult := math.Max(cfg.MultiplierFloor, 1+cfg.CostSigma*rng.NormFloat64())
	rate := discountRate + cfg.RateSigma*rng.NormFloat64()
	if rate <= -0.99 {
		rate = -0.99
	}

	in := base
	in.TotalBenefit = in.TotalBenefit.Mul(decimal.NewFromFloat(benefitMult))
	in.AnnualSavings = in.AnnualSavings.Mul(decimal.NewFromFloat(benefitMult))
	in.TotalCost = in.TotalCost.Mul(decimal.NewFromFloat(costMult))

	flows, err := e.projector.Project(ctx, in)
	if err != nil {
		return 0, goerr.Wrap(err, "trial projection failed")
	}
	npv, err := finmetrics.NPV(flows, rate)
	if err != nil {
		return 0, goerr.Wrap(err, "trial NPV failed")
	}
	v, _ := npv.Float64()
	return v, nil
}

func summarize(trials []float64) *model.Distribution {
	n := len(trials)
	sorted := make([]float64, n)
	copy(sorted, trials)
	sort.Float64s(sorted)

	var sum float64
	positive := 0
	for _, v := range trials {
		sum += v
		if v > 0 {
			positive++
		}
	}
	mean := sum / float64(n)

	var variance float64
	for _, v := range trials {
		d := v - mean
		variance += d * d
	}
	stddev := 0.0
	if n > 1 {
		stddev = math.Sqrt(variance / float64(n-1))
	}

	p5 := percentile(sorted, 5)

	// Expected shortfall: mean of the tail at or below the 5th percentile.
	var tailSum float64
	tailCount := 0
	for _, v := range sorted {
		if v > p5 {
			break
		}
		tailSum += v
		tailCount++
	}
	shortfall := p5
	if tailCount > 0 {
		shortfall = tailSum / float64(tailCount)
	}

	return &model.Distribution{
		Trials: n,
		Mean:   mean,
		StdDev: stddev,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Percentiles: map[int]float64{
			5:  p5,
			25: percentile(sorted, 25),
			50: percentile(sorted, 50),
			75: percentile(sorted, 75),
			95: percentile(sorted, 95),
		},
		ProbPositiveNPV:   float64(positive) / float64(n),
		ValueAtRisk5:      p5,
		ExpectedShortfall: shortfall,
	}
}

// percentile interpolates linearly between the two nearest order
// statistics. The input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
