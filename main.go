package main

import (
	"flag"

	"maze3d/logger"
)

func main() {
	configFile := flag.String("config", "", "path to a maze3d.yaml config file")
	flag.Parse()

	settings, err := LoadSettings(*configFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("loading settings")
	}
	logger.Init(settings.Log.Level, settings.Log.Format)

	g, err := NewGame(settings)
	if err != nil {
		logger.Log.WithError(err).Fatal("starting game")
	}
	if err := g.Run(); err != nil {
		logger.Log.WithError(err).Fatal("game stopped")
	}
}
