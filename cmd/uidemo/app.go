package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-ui/internal/config"
	"github.com/Faultbox/midgard-ui/internal/logger"
	"github.com/Faultbox/midgard-ui/internal/platform/sdlinput"
	"github.com/Faultbox/midgard-ui/internal/skin"
	"github.com/Faultbox/midgard-ui/internal/ui/input"
	"github.com/Faultbox/midgard-ui/internal/ui/render"
	"github.com/Faultbox/midgard-ui/internal/ui/widget"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// app owns the window, the input state and the widgets.
type app struct {
	cfg *config.Config

	window   *sdl.Window
	renderer *sdl.Renderer

	sampler  *sdlinput.Sampler
	input    *input.State
	dispatch *widget.Dispatcher
	painter  *render.Painter
	clicks   *input.ClickTracker

	widgets []*control
	buttons []input.ButtonState
}

// control is a demo widget: a label drawn with a skin style.
type control struct {
	widget.Base
	label  string
	toggle bool
}

func newApp(cfg *config.Config) (*app, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	window, err := sdl.CreateWindow(
		cfg.Window.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Window.Width), int32(cfg.Window.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	sk, err := loadSkin(cfg.UI.SkinPath)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	in := input.New(cfg.InputOptions())
	a := &app{
		cfg:      cfg,
		window:   window,
		renderer: renderer,
		sampler:  sdlinput.NewSampler(),
		input:    in,
		dispatch: widget.NewDispatcher(in, nil),
		painter:  render.NewPainter(&boxRenderer{r: renderer}),
		clicks:   input.NewClickTracker(in.Options()),
		buttons:  make([]input.ButtonState, in.ButtonCount()),
	}

	if err := a.buildWidgets(sk); err != nil {
		a.Close()
		return nil, err
	}

	a.dispatch.Events().OnMouseDown(func(source any, ev *input.MouseEvent) {
		if c, ok := source.(*control); ok {
			logger.Debug("mouse down", zap.String("widget", c.ID()), zap.Int("button", ev.Button))
		}
	})
	a.dispatch.Events().OnMouseUp(func(source any, ev *input.MouseEvent) {
		if c, ok := source.(*control); ok {
			logger.Debug("mouse up", zap.String("widget", c.ID()), zap.Int("button", ev.Button))
		}
	})

	logger.Info("demo initialized",
		zap.String("skin", sk.Name),
		zap.Int("widgets", len(a.widgets)),
		zap.Int("buttons", in.ButtonCount()),
	)
	return a, nil
}

func loadSkin(path string) (*skin.Skin, error) {
	if path == "" {
		return builtinSkin(), nil
	}
	sk, err := skin.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load skin: %w", err)
	}
	return sk, nil
}

func (a *app) buildWidgets(sk *skin.Skin) error {
	layout := []struct {
		id, styleName, label string
		toggle, focus        bool
		rect                 geom.Rectangle
	}{
		{"panel", "panel", "", false, false, geom.Rect(40, 40, 420, 300)},
		{"ok", "button", "OK", false, true, geom.Rect(60, 60, 160, 40)},
		{"cancel", "button", "Cancel", false, true, geom.Rect(240, 60, 160, 40)},
		{"remember", "checkbox", "Remember me", true, true, geom.Rect(60, 120, 200, 32)},
		{"item", "listitem", "Prontera", true, false, geom.Rect(60, 170, 340, 28)},
	}

	for _, s := range layout {
		cs, err := sk.Clone(s.styleName)
		if err != nil {
			return fmt.Errorf("widget %s: %w", s.id, err)
		}
		a.widgets = append(a.widgets, &control{
			Base: widget.Base{
				Name:     s.id,
				Rect:     s.rect,
				CanFocus: s.focus,
				Style:    cs,
			},
			label:  s.label,
			toggle: s.toggle,
		})
	}
	return nil
}

// Run starts the main loop.
func (a *app) Run() error {
	var frameTime time.Duration
	if a.cfg.Window.FPSLimit > 0 {
		frameTime = time.Second / time.Duration(a.cfg.Window.FPSLimit)
	}

	widgets := make([]widget.Widget, len(a.widgets))
	for i, c := range a.widgets {
		widgets[i] = c
	}

	for {
		start := time.Now()

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				return nil
			}
			a.sampler.HandleEvent(ev)
		}

		a.sampler.Sample().Apply(a.input)
		a.logButtons()

		a.dispatch.Update(widgets)
		a.handleClicks(start)

		if err := a.draw(); err != nil {
			return err
		}

		if frameTime > 0 {
			if elapsed := time.Since(start); elapsed < frameTime {
				sdl.Delay(uint32((frameTime - elapsed) / time.Millisecond))
			}
		}
	}
}

func (a *app) logButtons() {
	for i := range a.buttons {
		st := a.input.Button(i)
		if st != a.buttons[i] {
			logger.Debug("button state",
				zap.Int("button", i),
				zap.Stringer("from", a.buttons[i]),
				zap.Stringer("to", st),
			)
			a.buttons[i] = st
		}
	}
}

func (a *app) handleClicks(now time.Time) {
	for _, c := range a.widgets {
		if !a.dispatch.Clicked(c) {
			continue
		}
		if c.toggle {
			if c.Name == "item" {
				c.IsSelect = !c.IsSelect
			} else {
				c.IsChecked = !c.IsChecked
			}
		}
		n := a.clicks.Click(now, a.input.MousePosition())
		logger.Info("clicked", zap.String("widget", c.ID()), zap.Int("count", n))
	}
}

func (a *app) draw() error {
	if err := a.renderer.SetDrawColor(24, 24, 32, 255); err != nil {
		return fmt.Errorf("set draw color: %w", err)
	}
	if err := a.renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	a.painter.Begin()
	for _, c := range a.widgets {
		s := a.dispatch.Resolve(c, c.Style)
		a.painter.DrawStyle(s, c.Bounds(), a.cfg.UI.Opacity)
		a.painter.DrawText(s, c.Bounds(), c.label, a.cfg.UI.Opacity)
	}
	a.painter.End()

	a.renderer.Present()
	return nil
}

// Close releases SDL resources.
func (a *app) Close() {
	if a.renderer != nil {
		a.renderer.Destroy()
	}
	if a.window != nil {
		a.window.Destroy()
	}
	sdl.Quit()
}
