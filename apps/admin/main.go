package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
	logsvc "github.com/trezcool/gradebook/services/logger"
	"github.com/trezcool/gradebook/storage"
	rosterstore "github.com/trezcool/gradebook/storage/roster"
)

func main() {
	os.Exit(start())
}

func start() int {
	conf, err := core.NewConfig()
	if err != nil {
		log.Printf("loading config: %v", err)
		return 1
	}

	zapLogger, err := logsvc.NewConsoleLogger(conf)
	if err != nil {
		log.Printf("setting up logger: %v", err)
		return 1
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := logsvc.NewRollbarLogger(zapLogger, conf)

	// set up storage
	ctx := context.Background()
	store, err := storage.Open(ctx, conf)
	if err != nil {
		logger.Error(fmt.Sprintf("opening %s storage", conf.Storage.Driver), err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", err)
		}
	}()

	repo := rosterstore.NewRepository(store, conf.Storage, logger)
	svc := student.NewService(repo, conf.Subjects, logger)
	svc.Init(ctx)

	// start CLI
	cli := commandLine{svc: svc, repo: repo, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", formatError(err))
		}
		return 1
	}
	return 0
}
