package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avolkov/nutrisync/internal/adapter"
	"github.com/avolkov/nutrisync/internal/config"
	"github.com/avolkov/nutrisync/internal/logger"
	"github.com/avolkov/nutrisync/internal/service"
	"github.com/avolkov/nutrisync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("nutrisync-agent")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	gateway := adapter.NewHTTPServerGateway(cfg.Adapter)

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services, err := service.NewClientServices(ctx, localStorage, gateway, cfg.DeviceID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	services.Job.Start(ctx, cfg.Workers.SyncInterval)

	<-ctx.Done()
	services.Job.Stop()
	log.Info().Msg("agent shut down gracefully")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
