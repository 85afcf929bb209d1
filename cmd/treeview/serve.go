package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fabceolin/airgap-json-formatter-sub000/bridge"

	"github.com/scott-cotton/cli"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}
	s, err := cfg.Settings()
	if err != nil {
		return err
	}
	logger, err := bridge.NewDevelopmentLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := bridge.NewServer(
		bridge.WithLogger(logger),
		bridge.WithModelOptions(s.ModelOptions()...))
	theLog.Info("serving", "maxNodes", s.MaxNodes)
	return srv.ServeStdio(ctx)
}
