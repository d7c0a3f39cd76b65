// Command axischeck inspects, samples and validates axis processing
// profiles.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/milk9111/axisinput/profiles"
)

const (
	flagDir   = "dir"
	flagDebug = "debug"
	flagYAML  = "yaml"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var c checker
	return &cli.App{
		Name:  "axischeck",
		Usage: "inspect and validate axis processing profiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagDir,
				Usage: "profile directory; embedded defaults are used for missing files",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx *cli.Context) error {
			return c.init(ctx)
		},
		After: func(ctx *cli.Context) error {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
			return nil
		},
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list available profiles",
				Action: c.listAction,
			},
			{
				Name:      "show",
				Usage:     "print the processors of a profile",
				ArgsUsage: "<profile>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: flagYAML, Usage: "print the profile as YAML"},
				},
				Action: c.showAction,
			},
			{
				Name:      "sample",
				Usage:     "run values through a single-axis chain",
				ArgsUsage: "<profile> <axis> <value>...",
				Action:    c.sampleAction,
			},
			{
				Name:      "sample-stick",
				Usage:     "run x,y pairs through a dual-axis chain",
				ArgsUsage: "<profile> <stick> <x,y>...",
				Action:    c.sampleStickAction,
			},
			{
				Name:      "validate",
				Usage:     "report every problem in profile files",
				ArgsUsage: "<file>...",
				Action:    c.validateAction,
			},
			{
				Name:   "watch",
				Usage:  "validate profiles in --dir whenever they change",
				Action: c.watchAction,
			},
		},
	}
}

type checker struct {
	logger *zap.SugaredLogger
	loader *profiles.Loader
	dir    string
}

func (c *checker) init(ctx *cli.Context) error {
	var (
		l   *zap.Logger
		err error
	)
	if ctx.Bool(flagDebug) {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("axischeck: logger: %w", err)
	}
	c.logger = l.Sugar()
	c.dir = ctx.String(flagDir)
	c.loader = profiles.NewLoader(c.dir, c.logger)
	return nil
}
