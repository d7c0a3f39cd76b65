package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/axisinput/profiles"
	"github.com/milk9111/axisinput/source/ebitenreader"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	Profile   string
	Dir       string
	Gamepad   int
	Clipboard bool
	Logger    *zap.SugaredLogger
}

type Game struct {
	logger  *zap.SugaredLogger
	loader  *profiles.Loader
	watcher *profiles.Watcher
	reader  *ebitenreader.Reader
	canCopy bool

	ui    *ebitenui.UI
	panel *sidePanel
	face  text.Face

	profile string
	set     *profiles.Set
	sticks  []*stickView
	axes    []axisRow
	arena   *arena
	frames  int
}

func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	g := &Game{
		logger:  logger,
		loader:  profiles.NewLoader(opts.Dir, logger),
		reader:  ebitenreader.New(opts.Gamepad, logger),
		canCopy: opts.Clipboard,
		arena:   newArena(arenaRect),
	}

	if err := g.load(opts.Profile); err != nil {
		return nil, err
	}

	if opts.Dir != "" {
		w, err := profiles.NewWatcher(opts.Dir, logger)
		if err != nil {
			logger.Warnw("axisviz: hot reload disabled", "dir", opts.Dir, "error", err)
		} else {
			g.watcher = w
		}
	}

	names, err := g.loader.List()
	if err != nil {
		return nil, fmt.Errorf("axisviz: list profiles: %w", err)
	}
	g.ui, g.panel, g.face = buildUI(names, g.profile, g.canCopy, panelHandlers{
		onSelect: func(name string) { g.switchTo(name) },
		onReload: func() { g.switchTo(g.profile) },
		onCopy:   g.copyProfile,
	})
	g.panel.SetStatus(fmt.Sprintf("loaded %s", g.profile))
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) load(name string) error {
	set, err := g.loader.LoadSet(name)
	if err != nil {
		return err
	}
	g.profile = name
	g.set = set
	g.sticks = g.sticks[:0]
	for _, stick := range set.StickNames() {
		proc, _ := set.Stick(stick)
		g.sticks = append(g.sticks, newStickView(stick, proc))
	}
	g.axes = g.axes[:0]
	for _, name := range set.AxisNames() {
		proc, _ := set.Axis(name)
		g.axes = append(g.axes, axisRow{name: name, proc: proc})
	}
	return nil
}

// switchTo keeps the current profile when name fails to load.
func (g *Game) switchTo(name string) {
	if err := g.load(name); err != nil {
		g.logger.Errorw("axisviz: load profile", "profile", name, "error", err)
		g.panel.SetStatus("error: " + err.Error())
		return
	}
	g.logger.Infow("axisviz: profile active", "profile", name)
	g.panel.SetStatus(fmt.Sprintf("loaded %s", name))
}

func (g *Game) copyProfile() {
	if !g.canCopy {
		g.panel.SetStatus("clipboard unavailable")
		return
	}
	data, err := g.loader.Read(g.profile)
	if err != nil {
		g.panel.SetStatus("error: " + err.Error())
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.panel.SetStatus(fmt.Sprintf("copied %s (%d bytes)", g.profile, len(data)))
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if ev.Profile == "" || ev.Profile == profileBase(g.profile) {
				g.logger.Infow("axisviz: reloading", "path", ev.Path)
				g.switchTo(g.profile)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warnw("axisviz: watcher", "error", err)
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.switchTo(g.profile)
	}

	g.reader.Update()
	g.pollWatcher()
	g.ui.Update()

	for _, v := range g.sticks {
		v.Sample(g.reader)
	}
	for i := range g.axes {
		g.axes[i].Sample(g.reader)
	}
	if len(g.sticks) > 0 {
		g.arena.Drive(g.sticks[0].processed)
	}
	g.arena.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 28, 255})

	x, y := float64(panelWidth+24), 24.0
	for _, v := range g.sticks {
		if x+stickSize > float64(arenaRect.Min.X) {
			x = float64(panelWidth + 24)
			y += stickSize + 72
		}
		v.Draw(screen, g.face, x, y)
		x += stickSize + 24
	}

	rowY := y + stickSize + 72
	for _, row := range g.axes {
		row.Draw(screen, g.face, float64(panelWidth+24), rowY)
		rowY += 22
	}

	g.arena.Draw(screen)

	device := "keyboard (no gamepad)"
	if g.reader.Connected() {
		device = g.reader.GamepadName()
	}
	drawText(screen, g.face, fmt.Sprintf("%s    %s    FPS: %.0f", g.profile, device, ebiten.ActualFPS()),
		float64(panelWidth+24), baseHeight-28, color.Gray{Y: 180})

	g.ui.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
