// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "faqit",
		Usage: "Answer questions from an FAQ knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file (default: faqit.yaml if present)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "corpus",
				Usage: "Path to the FAQ JSON file (overrides config)",
			},
			&cli.StringFlag{
				Name:  "cache-backend",
				Usage: "Embedding cache backend: file, badger or valkey (overrides config)",
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "Message language: en or pl (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single question",
				ArgsUsage: "<question...>",
				Action:    askCommand,
			},
			{
				Name:      "debug",
				Usage:     "Show similarity scores and which thresholds a question would pass",
				ArgsUsage: "<question...>",
				Action:    debugCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of matches to show",
						Value: 3,
					},
					&cli.Float64SliceFlag{
						Name:  "probe",
						Usage: "Threshold to test the best match against (repeatable)",
						Value: cli.NewFloat64Slice(0.7, 0.5),
					},
				},
			},
			{
				Name:   "rebuild",
				Usage:  "Discard the embedding cache and regenerate it",
				Action: rebuildCommand,
			},
			{
				Name:   "list",
				Usage:  "Print all FAQ entries",
				Action: listCommand,
			},
			{
				Name:   "serve",
				Usage:  "Start the HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address (overrides config)",
					},
				},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
