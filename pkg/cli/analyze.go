package cli

import (
	"context"
	"os"

	"github.com/enricoaquilina/dora-finrisk/pkg/cli/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/usecase"
	"github.com/enricoaquilina/dora-finrisk/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze() *cli.Command {
	var input string
	var seed int64
	var trials int
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
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
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Run the full ROI analysis pipeline",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			file, err := config.LoadAnalysisFile(input)
			if err != nil {
				return goerr.Wrap(err, "failed to load analysis input")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc, err := usecase.New(repo)
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

			result, err := uc.ROI.Analyze(ctx, in)
			if err != nil {
				return goerr.Wrap(err, "analysis failed")
			}

			return renderResult(ctx, os.Stdout, result, output)
		},
	}
}
