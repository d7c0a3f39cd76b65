package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/milk9111/axisinput/profiles"
)

func (c *checker) listAction(ctx *cli.Context) error {
	names, err := c.loader.List()
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	for _, name := range names {
		p, err := c.loader.Load(name)
		if err != nil {
			fmt.Fprintf(out, "%s\t(error: %v)\n", name, err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", name, p.Description)
	}
	return nil
}

func (c *checker) showAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("show: expected exactly one profile", 2)
	}
	p, err := c.loader.Load(ctx.Args().First())
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	if ctx.Bool(flagYAML) {
		data, err := profiles.Encode(p)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	set, err := c.loader.Build(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "profile %s\n", set.Name)
	for _, name := range set.AxisNames() {
		proc, _ := set.Axis(name)
		fmt.Fprintf(out, "  axis  %-14s %s\n", name, proc)
	}
	for _, name := range set.StickNames() {
		proc, _ := set.Stick(name)
		fmt.Fprintf(out, "  stick %-14s %s\n", name, proc)
	}
	return nil
}

func (c *checker) sampleAction(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) < 3 {
		return cli.Exit("sample: expected <profile> <axis> <value>...", 2)
	}
	set, err := c.loader.LoadSet(args[0])
	if err != nil {
		return err
	}
	proc, ok := set.Axis(args[1])
	if !ok {
		return fmt.Errorf("axischeck: profile %s has no axis %q", set.Name, args[1])
	}
	for _, raw := range args[2:] {
		v, err := parseFloat(raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%g -> %g\n", v, proc.Process(v))
	}
	return nil
}

func (c *checker) sampleStickAction(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) < 3 {
		return cli.Exit("sample-stick: expected <profile> <stick> <x,y>...", 2)
	}
	set, err := c.loader.LoadSet(args[0])
	if err != nil {
		return err
	}
	proc, ok := set.Stick(args[1])
	if !ok {
		return fmt.Errorf("axischeck: profile %s has no stick %q", set.Name, args[1])
	}
	for _, raw := range args[2:] {
		v, err := parsePair(raw)
		if err != nil {
			return err
		}
		got := proc.Process(v)
		fmt.Fprintf(ctx.App.Writer, "(%g, %g) -> (%g, %g)\n", v.X(), v.Y(), got.X(), got.Y())
	}
	return nil
}

func (c *checker) validateAction(ctx *cli.Context) error {
	files := ctx.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("validate: expected at least one file", 2)
	}
	var failed error
	for _, file := range files {
		if err := c.validateFile(file); err != nil {
			fmt.Fprintf(ctx.App.Writer, "FAIL %s\n", file)
			for _, e := range multierr.Errors(errors.Unwrap(err)) {
				fmt.Fprintf(ctx.App.Writer, "  %v\n", e)
			}
			failed = multierr.Append(failed, err)
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "ok   %s\n", file)
	}
	if failed != nil {
		return cli.Exit(fmt.Sprintf("%d of %d files failed validation", len(multierr.Errors(failed)), len(files)), 1)
	}
	return nil
}

// validateFile resolves script files relative to the profile.
func (c *checker) validateFile(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("axischeck: %w", err)
	}
	p, err := profiles.Decode(data)
	if err != nil {
		return fmt.Errorf("axischeck: decode %s: %w", file, err)
	}
	return profiles.Validate(p, profiles.NewLoader(filepath.Dir(file), c.logger))
}

func (c *checker) watchAction(ctx *cli.Context) error {
	if c.dir == "" {
		return cli.Exit("watch: --dir is required", 2)
	}
	w, err := profiles.NewWatcher(c.dir, c.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.watch(sigCtx, w, ctx.App.Writer)
}

func (c *checker) watch(ctx context.Context, w *profiles.Watcher, out io.Writer) error {
	fmt.Fprintf(out, "watching %s\n", c.dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Profile == "" {
				fmt.Fprintf(out, "script changed: %s\n", ev.Path)
				continue
			}
			if _, err := os.Stat(ev.Path); err != nil {
				fmt.Fprintf(out, "removed %s\n", ev.Profile)
				continue
			}
			if err := c.validateFile(ev.Path); err != nil {
				fmt.Fprintf(out, "FAIL %s: %v\n", ev.Profile, err)
				continue
			}
			fmt.Fprintf(out, "ok   %s\n", ev.Profile)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.Warnw("axischeck: watcher", "error", err)
		}
	}
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("axischeck: invalid value %q", s)
	}
	return float32(v), nil
}

func parsePair(s string) (mgl32.Vec2, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return mgl32.Vec2{}, fmt.Errorf("axischeck: expected x,y, got %q", s)
	}
	fx, err := parseFloat(x)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	fy, err := parseFloat(y)
	if err != nil {
		return mgl32.Vec2{}, err
	}
	return mgl32.Vec2{fx, fy}, nil
}
