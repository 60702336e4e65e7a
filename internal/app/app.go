// Package app wires the window, renderer and showcase stage into the
// main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/config"
	"github.com/maisonverte/vitrine/internal/engine/framebuffer"
	"github.com/maisonverte/vitrine/internal/engine/input"
	"github.com/maisonverte/vitrine/internal/engine/renderer"
	"github.com/maisonverte/vitrine/internal/engine/window"
	"github.com/maisonverte/vitrine/internal/logger"
	"github.com/maisonverte/vitrine/internal/showcase"
)

const defaultFPS = 60

// App is the running showcase application.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	shoes    *showcase.ShoeRenderer
	stage    *showcase.Stage
	input    *input.Input

	dragging bool
}

// New creates the application. The window must be created first so the
// OpenGL context exists for everything after it.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Vitrine",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		MSAA:   cfg.Graphics.MSAA,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.shoes, err = showcase.NewShoeRenderer()
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to compile shoe shaders: %w", err)
	}

	fps := cfg.Graphics.FPSLimit
	if fps <= 0 {
		fps = defaultFPS
	}
	a.stage = showcase.New(cfg.Showcase, fps)
	a.input = input.New()

	logger.Info("application initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	logger.Info("starting showcase loop")

	for a.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.render(dt)
		a.window.SwapBuffers()

		if frameBudget > 0 {
			if sleep := frameBudget - time.Since(frameStart); sleep > 0 {
				time.Sleep(sleep)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.stage.Orbit.HandleDrag(float32(event.RelX), float32(event.RelY))
			}

		case input.EventMouseWheel:
			a.stage.Orbit.HandleZoom(event.Wheel)

		case input.EventKeyDown:
			a.handleKey(event.Key)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		a.running = false

	case sdl.SCANCODE_S:
		next := a.stage.CycleSilhouette()
		logger.Info("silhouette requested", zap.String("silhouette", string(next)))

	case sdl.SCANCODE_M:
		next := a.stage.CycleMaterial()
		logger.Info("material selected", zap.String("material", string(next)))

	case sdl.SCANCODE_LEFT:
		a.stage.Orbit.Orbit(-0.2)

	case sdl.SCANCODE_RIGHT:
		a.stage.Orbit.Orbit(0.2)

	case sdl.SCANCODE_C:
		a.stage.CycleColorway()

	case sdl.SCANCODE_A:
		a.stage.SetAdvancedShaders(!a.stage.AdvancedShaders())
		logger.Info("shader path toggled", zap.Bool("advanced", a.stage.AdvancedShaders()))

	case sdl.SCANCODE_R:
		a.stage.SetAutoRotate(true)

	case sdl.SCANCODE_T:
		a.stage.SetAutoRotate(false)

	case sdl.SCANCODE_P, sdl.SCANCODE_F12:
		if _, err := a.renderer.CapturePNG(a.cfg.Capture.Dir); err != nil {
			logger.Error("screenshot failed", zap.Error(err))
		}

	case sdl.SCANCODE_O:
		a.captureHiRes()
	}
}

// captureHiRes re-renders the current frame into an offscreen target at
// twice the window resolution and saves it.
func (a *App) captureHiRes() {
	w, h := a.renderer.Size()
	fb, err := framebuffer.New(int32(w*2), int32(h*2))
	if err != nil {
		logger.Error("hi-res capture target failed", zap.Error(err))
		return
	}
	defer fb.Destroy()

	restore := fb.BindWithViewport()
	fb.Clear(0.051, 0.122, 0.106, 1.0)

	set := a.stage.ActiveSet()
	view := a.stage.Camera.ViewMatrix()
	proj := a.stage.ProjectionMatrix(w, h)
	model := a.stage.ModelMatrix()
	a.shoes.Draw(set, a.stage.Group(), model, view, proj, a.stage.Lights())

	img := fb.CaptureImage()
	restore()

	if _, err := renderer.SavePNG(img, a.cfg.Capture.Dir); err != nil {
		logger.Error("hi-res capture failed", zap.Error(err))
	}
}

func (a *App) render(dt float32) {
	a.renderer.Begin()

	set := a.stage.Update(dt)

	w, h := a.renderer.Size()
	view := a.stage.Camera.ViewMatrix()
	proj := a.stage.ProjectionMatrix(w, h)
	model := a.stage.ModelMatrix()

	a.shoes.Draw(set, a.stage.Group(), model, view, proj, a.stage.Lights())

	a.renderer.End()
}

// Close cleans up application resources in reverse creation order.
func (a *App) Close() {
	logger.Info("closing application")
	if a.shoes != nil {
		a.shoes.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
