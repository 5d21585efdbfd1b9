package main

import (
	"embed"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/chazu/botforge/pkg/notify"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	events := notify.Default()
	events.SetLevel(notify.ParseLevel(cfg.LogLevel))

	app := NewApp(events)

	err = wails.Run(&options.App{
		Title:  "BotForge",
		Width:  cfg.Width,
		Height: cfg.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}
