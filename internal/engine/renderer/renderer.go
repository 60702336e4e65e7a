// Package renderer owns global OpenGL state for the showcase.
package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/maisonverte/vitrine/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	MSAA   int
}

// Renderer handles frame-global OpenGL state. Mesh upload and draw
// calls live with the showcase scene; this owns clearing, viewport,
// blending and screenshot capture.
type Renderer struct {
	config Config
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.MSAA > 1 {
		gl.Enable(gl.MULTISAMPLE)
	}

	// Deep green stage backdrop
	gl.ClearColor(0.051, 0.122, 0.106, 1.0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

// CapturePNG reads the back buffer and writes it as a timestamped PNG
// into dir, returning the written path.
func (r *Renderer) CapturePNG(dir string) (string, error) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL reads bottom-up; flip rows while copying into the image.
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rowLen := w * 4
	for y := 0; y < h; y++ {
		src := pixels[(h-1-y)*rowLen : (h-y)*rowLen]
		copy(img.Pix[y*img.Stride:], src)
	}

	return SavePNG(img, dir)
}

// SavePNG writes an image as a timestamped PNG into dir, returning the
// written path.
func SavePNG(img *image.RGBA, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("capture dir: %w", err)
	}

	path := filepath.Join(dir, time.Now().Format("vitrine-20060102-150405.png"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("capture file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode capture: %w", err)
	}

	logger.Info("screenshot saved", zap.String("path", path))
	return path, nil
}
