package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	app "github.com/rocketscienceinc/nineboard-agent/internal"
	"github.com/rocketscienceinc/nineboard-agent/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config. The referee port may be given as -p, the way the referee launches agents.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	configPath := flag.String("config", filepath.Join(baseDir, "./config.yml"), "path to the config file")
	port := flag.String("p", "", "referee port")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	if *port != "" {
		conf.Referee.Port = *port
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
