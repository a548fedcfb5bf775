package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/changomango/portfolio/internal"
	pkgconfig "github.com/changomango/portfolio/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	// PORT wins over the config file so hosting platforms can assign one.
	if cmd.IsSet("port") {
		port, err := strconv.Atoi(cmd.String("port"))
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", cmd.String("port"), err)
		}
		cfg.App.HTTP.Port = port
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "portfolio",
		Usage:  "Personal portfolio site with a filterable project catalog",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP port, overrides app.http.port",
				Sources: cli.EnvVars("PORT"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger, _ := zap.NewProduction()
		logger.Error("application error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
