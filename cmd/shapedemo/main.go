// Command shapedemo renders a scene of shaped views to PNG or PDF.
//
// Without -scene it renders the built-in showcase:
//
//	shapedemo -out showcase.png -scale 2
//	shapedemo -scene chat.yaml -backdrop photo.jpg -out chat.pdf
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/shapeview"
	"github.com/gogpu/shapeview/cmd/shapedemo/internal/scene"
	"github.com/gogpu/shapeview/render"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML); built-in showcase when empty")
		output    = flag.String("out", "shapedemo.png", "output file (.png or .pdf)")
		scale     = flag.Float64("scale", 0, "device pixels per point; overrides the scene")
		backdrop  = flag.String("backdrop", "", "image painted behind the views (PNG or JPEG)")
		logLevel  = flag.String("log-level", "", "debug, info, warn or error")
		logFile   = flag.String("log-file", "", "rotated JSON log file")
	)
	flag.Parse()

	logger := newLogger(logOptions{Level: *logLevel, File: *logFile}.withEnv())
	shapeview.SetLogger(logger)

	if err := run(logger, *scenePath, *output, *scale, *backdrop); err != nil {
		logger.Error("shapedemo failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, scenePath, output string, scale float64, backdrop string) error {
	s := scene.Defaults()
	if scenePath != "" {
		var err error
		if s, err = scene.Load(scenePath); err != nil {
			return err
		}
	}
	if scale > 0 {
		s.Canvas.Scale = scale
	}

	canvas, err := render.NewCanvas(s.Canvas.Width, s.Canvas.Height, s.Canvas.Scale)
	if err != nil {
		return err
	}
	bg, err := s.ClearColor()
	if err != nil {
		return err
	}
	canvas.SetClearColor(bg)

	if backdrop != "" {
		img, err := loadImage(backdrop)
		if err != nil {
			return err
		}
		canvas.SetBackdrop(img)
	}

	views, err := s.Build(func() shapeview.Surface { return canvas.NewSurface() })
	if err != nil {
		return err
	}

	if err := write(canvas, output); err != nil {
		return err
	}

	w, h := canvas.PixelSize()
	logger.Info("scene rendered", "views", len(views), "out", output, "width", w, "height", h)
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backdrop: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode backdrop %s: %w", path, err)
	}
	return img, nil
}

func write(canvas *render.Canvas, path string) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".pdf" {
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if ext == ".pdf" {
		return render.WritePDF(f, canvas, render.DefaultPDFOptions())
	}
	return png.Encode(f, canvas.Render())
}
