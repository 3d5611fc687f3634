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

func cmdPenalty() *cli.Command {
	var input string
	var output string

	return &cli.Command{
		Name:    "penalty",
		Aliases: []string{"p"},
		Usage:   "Assess the penalty exposure of a set of violations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Violations input TOML file",
				Required:    true,
				Sources:     cli.EnvVars("FINRISK_INPUT"),
				Destination: &input,
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
			file, err := config.LoadViolationsFile(input)
			if err != nil {
				return goerr.Wrap(err, "failed to load violations input")
			}

			// Penalty assessment stores nothing, so the throwaway memory
			// backend is always sufficient here.
			uc, err := usecase.New(memory.New())
			if err != nil {
				return goerr.Wrap(err, "failed to initialize use cases")
			}

			assessment, err := uc.Penalty.Assess(ctx, file.ToAssessInput())
			if err != nil {
				return goerr.Wrap(err, "penalty assessment failed")
			}

			return renderAssessment(ctx, os.Stdout, assessment, output)
		},
	}
}
