package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arnavshah/shift-optimizer-go/pkg/logging"
	"github.com/arnavshah/shift-optimizer-go/pkg/models"
	"github.com/arnavshah/shift-optimizer-go/pkg/optimizer"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "shiftopt",
		Usage: "Run the shift optimizer offline on a JSON request file",
		Commands: []*cli.Command{
			runCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var runCmd = &cli.Command{
	Name:    "run",
	Usage:   "Optimize a schedule request",
	Aliases: []string{"r"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input request.json",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: false,
			Usage:    "specify the output file (default: stdout)",
		},
		&cli.IntFlag{
			Name:     "min",
			Required: false,
			Value:    2,
			Usage:    "default minimum staff per day",
		},
		&cli.IntFlag{
			Name:     "max",
			Required: false,
			Value:    5,
			Usage:    "default maximum staff per day",
		},
		&cli.BoolFlag{
			Name:     "strict",
			Required: false,
			Usage:    "abort on the first date that cannot meet its minimum",
		},
	},
	Action: func(ctx *cli.Context) error {
		logging.Initialize(true)

		data, err := os.ReadFile(ctx.String("input"))
		if err != nil {
			return err
		}

		var req models.ScheduleRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("failed to parse request: %w", err)
		}
		if ctx.Bool("strict") {
			req.Strict = true
		}

		assigner := optimizer.NewHeuristic(optimizer.Options{
			MinStaffPerDay: ctx.Int("min"),
			MaxStaffPerDay: ctx.Int("max"),
		})
		result := assigner.Optimize(&req)

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}

		if path := ctx.String("output"); path != "" {
			return os.WriteFile(path, append(out, '\n'), 0o644)
		}
		fmt.Println(string(out))
		return nil
	},
}
