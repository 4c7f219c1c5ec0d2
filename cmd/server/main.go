package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldgen-server/internal/field"
	"fieldgen-server/internal/layout"
	"fieldgen-server/internal/middleware"
	"fieldgen-server/internal/render"
	"fieldgen-server/internal/server"
	"fieldgen-server/internal/shared/config"
	"fieldgen-server/internal/shared/logger"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "fieldgen-server",
		Usage: "WRO Future Engineers field layout randomizer",
		Commands: []*cli.Command{
			serveCommand(),
			renderCommand(),
		},
		Action: runServe,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "start the randomizer HTTP server",
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	logger.Init()

	cfg := config.GlobalConfig
	appLogger := slog.With("component", "main")
	appLogger.Info("Starting field randomizer server",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
	)

	layoutService := layout.NewService(cfg.Generator.Seed, cfg.Generator.MaxAttempts, slog.Default())
	renderService := render.NewService(slog.Default())

	routes := server.NewRoutes(layoutService, renderService, slog.Default())
	mux := routes.Setup()

	corsMiddleware := middleware.NewCORS()
	rateLimiter := middleware.NewRateLimiter()
	handler := middleware.RequestID(corsMiddleware.Middleware(rateLimiter.Middleware(mux)))

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server failed: %w", err)
	case <-stop:
		appLogger.Info("Shutdown signal received")
	case <-ctx.Done():
		appLogger.Info("Context canceled, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	appLogger.Info("Server stopped")
	return nil
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "randomize a single layout and write the PNG to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "challenge",
				Value: "open",
				Usage: "challenge type: open or obstacle",
			},
			&cli.StringFlag{
				Name:  "direction",
				Value: "random",
				Usage: "driving direction: cw, ccw or random",
			},
			&cli.BoolFlag{
				Name:  "fixed-center",
				Usage: "keep every inner wall at its default position (open challenge only)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed, 0 takes one from the clock",
			},
			&cli.IntFlag{
				Name:  "scale",
				Value: 100,
				Usage: "output size as a percentage of full resolution",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "field.png",
				Usage: "output file path, - for stdout",
			},
		},
		Action: runRender,
	}
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	logger.Init()

	req := layout.Request{FixedCenter: cmd.Bool("fixed-center")}

	switch cmd.String("challenge") {
	case "open":
		req.Challenge = field.ChallengeOpen
	case "obstacle":
		req.Challenge = field.ChallengeObstacle
	default:
		return fmt.Errorf("unknown challenge %q, want open or obstacle", cmd.String("challenge"))
	}

	switch cmd.String("direction") {
	case "cw":
		req.Direction = field.Clockwise
	case "ccw":
		req.Direction = field.Counterclockwise
	case "random":
		// leave empty, the layout service rolls one
	default:
		return fmt.Errorf("unknown direction %q, want cw, ccw or random", cmd.String("direction"))
	}

	layoutService := layout.NewService(cmd.Int64("seed"), config.GlobalConfig.Generator.MaxAttempts, slog.Default())
	renderService := render.NewService(slog.Default())

	l, err := layoutService.Generate(req)
	if err != nil {
		return fmt.Errorf("failed to generate layout: %w", err)
	}

	img, err := renderService.PNG(l)
	if err != nil {
		return fmt.Errorf("failed to render layout: %w", err)
	}

	if pct := cmd.Int("scale"); pct != 100 {
		img, err = render.Scale(img, pct)
		if err != nil {
			return fmt.Errorf("failed to scale image: %w", err)
		}
	}

	out := cmd.String("out")
	if out == "-" {
		_, err := os.Stdout.Write(img)
		return err
	}
	if err := os.WriteFile(out, img, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	slog.Info("Field image written",
		"path", out,
		"bytes", len(img),
		"challenge", l.Challenge,
		"direction", l.Direction,
	)
	return nil
}
