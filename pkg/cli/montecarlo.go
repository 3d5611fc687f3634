package cli

import (
	"context"
	"os"

	"github.com/enricoaquilina/dora-finrisk/pkg/cli/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/repository/memory"
	"github.com/enricoaquilina/dora-finrisk/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdMonteCarlo() *cli.Command {
	var input string
	var seed int64
	var trials int
	var output string

	return &cli.Command{
		Name:    "montecarlo",
		Aliases: []string{"mc"},
		Usage:   "Run only the Monte Carlo NPV simulation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Analysis input TOML file",
				Required:    true,
				Sources:     cli.EnvVars("FINRISK_INPUT"),
				Destination: &input,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "Simulation seed override (0 keeps the file value)",
				Sources:     cli.EnvVars("FINRISK_SEED"),
				Destination: &seed,
			},
			&cli.IntFlag{
				Name:        "trials",
				Usage:       "Simulation trial count override",
				Sources:     cli.EnvVars("FINRISK_TRIALS"),
				Destination: &trials,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output format (table or json)",
				Value:       "table",
				Sources:     cli.EnvVars("FINRISK_OUTPUT"),
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			file, err := config.LoadAnalysisFile(input)
			if err != nil {
				return goerr.Wrap(err, "failed to load analysis input")
			}

			uc, err := usecase.New(memory.New())
			if err != nil {
				return goerr.Wrap(err, "failed to initialize use cases")
			}

			in := file.ToAnalysisInput()
			if seed != 0 {
				in.Trials.Seed = seed
			}
			if trials > 0 {
				in.Trials.Trials = trials
			}

			dist, err := uc.ROI.Simulate(ctx, in)
			if err != nil {
				return goerr.Wrap(err, "simulation failed")
			}

			return renderDistribution(ctx, os.Stdout, dist, output)
		},
	}
}
