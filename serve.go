package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ishaan1911/portfolio/internal/config"
	"github.com/ishaan1911/portfolio/internal/content"
	"github.com/ishaan1911/portfolio/internal/render"
	"github.com/ishaan1911/portfolio/internal/server"
	"github.com/ishaan1911/portfolio/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.Mode)

	m, err := loadContent(cfg.Content.Path)
	if err != nil {
		return err
	}
	rd, err := render.New()
	if err != nil {
		return err
	}

	reg := session.NewRegistry(session.Options{
		Sections:      content.Sections(),
		IdleTTL:       cfg.Views.IdleTTL,
		SweepInterval: cfg.Views.SweepInterval,
		MaxLive:       cfg.Views.MaxLive,
	})
	srv, err := server.New(reg, rd, m)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return reg.Run(ctx) })
	g.Go(func() error { return srv.Run(ctx, cfg.Addr()) })

	slog.Info("portfolio listening", "addr", cfg.Addr(), "mode", cfg.Server.Mode)
	err = g.Wait()
	slog.Info("portfolio stopped")
	return err
}
