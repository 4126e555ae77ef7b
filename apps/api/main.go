package main

import (
	"context"
	"fmt"
	"log"

	echoapi "github.com/trezcool/gradebook/apps/api/echo"
	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
	logsvc "github.com/trezcool/gradebook/services/logger"
	"github.com/trezcool/gradebook/storage"
	rosterstore "github.com/trezcool/gradebook/storage/roster"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// set up loggers
	zapLogger, err := logsvc.NewConsoleLogger(conf)
	if err != nil {
		log.Fatalf("setting up logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := logsvc.NewRollbarLogger(zapLogger, conf)

	// set up storage
	ctx := context.Background()
	store, err := storage.Open(ctx, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening %s storage: %v", conf.Storage.Driver, err), err)
	}
	defer func() {
		if err = store.Close(); err != nil {
			logger.Error("failed to close storage", err)
		}
	}()

	// set up services
	repo := rosterstore.NewRepository(store, conf.Storage, logger)
	studentSvc := student.NewService(repo, conf.Subjects, logger)
	studentSvc.Init(ctx)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build), map[string]interface{}{
		"storage":  conf.Storage.Driver,
		"subjects": conf.Subjects,
	})
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.Options{
		Address:    conf.Server.Address,
		AppName:    conf.AppName,
		Debug:      conf.Debug,
		TestMode:   conf.TestMode,
		Logger:     logger,
		StudentSvc: studentSvc,
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Error(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(ctx, conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Error(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
