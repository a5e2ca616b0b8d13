package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/cropper-go/app"
	"github.com/soocke/cropper-go/capture"
	"github.com/soocke/cropper-go/config"
	"github.com/soocke/cropper-go/debug"
)

func main() {
	defaultPath, err := config.DefaultPath()
	if err != nil {
		defaultPath = "cropper.json"
	}
	cfgPath := flag.String("config", defaultPath, "config file (.json or .toml)")
	imagePath := flag.String("image", "", "image to crop (default: last image, then the built-in sample)")
	screen := flag.Bool("screen", false, "crop a screen grab")
	screenRect := flag.String("screen-rect", "", "crop a grab of this screen area, WxH+X+Y (implies -screen)")
	ratio := flag.String("ratio", "", `aspect ratio: "free", "image" or "W:H"`)
	debugFlag := flag.Bool("debug", false, "debug logging and runtime stats")
	flag.Parse()

	logger := NewLogger(os.Stderr, slog.LevelInfo)
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Warn("config load", "error", err)
	}
	if *imagePath != "" {
		if *imagePath != cfg.ImagePath {
			// a saved crop belongs to the previous image
			cfg.CropX, cfg.CropY, cfg.CropW, cfg.CropH = 0, 0, 0, 0
		}
		cfg.ImagePath = *imagePath
	}
	opts := app.Options{Screen: *screen}
	if *screenRect != "" {
		area, err := capture.ParseArea(*screenRect)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cropper:", err)
			os.Exit(2)
		}
		opts.Screen, opts.Area = true, area
	}
	if *ratio != "" {
		cfg.AspectRatio = *ratio
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug {
		logger = NewLogger(os.Stderr, slog.LevelDebug)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		debug.Start(ctx, 5*time.Second, logger)
	}

	application, err := app.NewApp("Cropper", cfg, *cfgPath, opts, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cropper:", err)
		os.Exit(1)
	}
	application.Start()
}
