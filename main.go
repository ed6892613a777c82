package main

import (
	"flag"
	"log"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/render"
	"SketchBoard/internal/rough"
	"SketchBoard/internal/state"
	"SketchBoard/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", config.DefaultPath(), "path to the TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}
	log.Printf("[MAIN] Using settings from %s", *configPath)

	tool, err := state.ParseKind(cfg.Style.Tool)
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}

	renderer := render.New(rough.NewCanvas())
	b := board.New(
		state.NewFactory(rough.NewGenerator()),
		state.NewHistory(),
		cfg.Transform(),
		renderer,
		tool,
		board.Style{
			StrokeColor: cfg.Style.StrokeColor,
			FillColor:   cfg.Style.FillColor,
			StrokeWidth: cfg.Style.StrokeWidth,
			Roughness:   cfg.Style.Roughness,
			FontFamily:  cfg.Style.FontFamily,
		},
	)

	ui.RunApp(b, renderer, cfg)
}
