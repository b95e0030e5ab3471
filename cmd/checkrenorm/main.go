package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"renormising/internal/config"
)

func main() {
	logger, err := zap.NewDevelopment() // or NewProduction, or NewDevelopment
	if err != nil {
		log.Fatal(err)
	}
	sugar := logger.Sugar()

	conf := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	c := NewChecker(conf, logger)
	if err := c.Run(ctx); err != nil {
		sugar.Fatalw("check failed", "err", err)
	}

	sugar.Infow("all checks passed", "table", conf.TableFile, "renorm", conf.RenormFile)
}
