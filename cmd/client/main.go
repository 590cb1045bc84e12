package main

import (
	"fmt"

	"github.com/MKhiriev/shared-note/internal/adapter"
	"github.com/MKhiriev/shared-note/internal/client"
	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/internal/note"
	"github.com/MKhiriev/shared-note/internal/tui"
	"github.com/MKhiriev/shared-note/models"
)

const role = "shared-note-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log := logger.NewClientLogger(role, "")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	noteAdapter, err := adapter.NewHTTPNoteAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create note adapter")
	}

	noteClient := note.NewClient(noteAdapter, cfg.Status, log)
	ui := tui.New(noteClient, buildInfo, log)

	app := client.NewApp(noteClient, ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
