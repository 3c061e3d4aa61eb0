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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/nyaya"
	"github.com/poiesic/nyaya/ai"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/ingestion"
	"github.com/poiesic/nyaya/search"
)

func main() {
	app := &cli.App{
		Name:  "nyaya",
		Usage: "Hybrid search over legal acts and judgments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the corpus with a free-text query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(libraryFlags(),
					&cli.IntFlag{
						Name:    "topk",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
				),
			},
			{
				Name:      "ingest",
				Usage:     "Ingest documents from a JSON file",
				ArgsUsage: "<file>",
				Action:    ingestCommand,
				Flags:     libraryFlags(),
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all documents in a namespace",
				Action: reindexCommand,
				Flags: append(libraryFlags(),
					&cli.StringFlag{
						Name:     "namespace",
						Aliases:  []string{"n"},
						Usage:    "Namespace to reindex (acts, judgments)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
			{
				Name:   "stats",
				Usage:  "Show corpus statistics",
				Action: statsCommand,
				Flags:  libraryFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// libraryFlags are shared by every command that opens a library.
func libraryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to the database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML search configuration file",
		},
		&cli.StringFlag{
			Name:    "voyage-api-key",
			Usage:   "Voyage AI API key for remote embeddings",
			EnvVars: []string{"VOYAGE_API_KEY"},
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Local embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Local embedding model name",
			Value: "embeddinggemma",
		},
	}
}

func openLibrary(c *cli.Context) (*nyaya.Library, error) {
	aiConfig := ai.NewConfig(
		ai.WithRemoteAPIKey(c.String("voyage-api-key")),
		ai.WithLocalHost(c.String("embedding-host")),
		ai.WithLocalModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []nyaya.LibraryOption{
		nyaya.WithAIConfig(aiConfig),
	}

	if configPath := c.String("config"); configPath != "" {
		cfg, err := search.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load search config: %w", err)
		}
		opts = append(opts, nyaya.WithSearchConfig(cfg))
	}

	lib, err := nyaya.Open(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return lib, nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("query is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	results := lib.Search(context.Background(), query, c.Int("topk"))

	fmt.Printf("Found %d hits\n", len(results))
	for _, hit := range results {
		fmt.Printf("%d: [%s/%s] %.3f (%s)\n  %s\n",
			hit.Rank, hit.Document.Namespace, hit.Document.ID,
			hit.FinalScore, hit.SearchType, summarize(hit.Document.Content))
	}
	return nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("input file is required")
	}
	path := c.Args().First()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var docs []*core.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}
	if len(docs) == 0 {
		fmt.Fprintln(os.Stderr, "No documents in input file")
		return nil
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	pipeline, err := lib.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	if err := pipeline.Ingest(context.Background(), docs...); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d documents from %s\n", len(docs), path)
	return nil
}

func reindexCommand(c *cli.Context) error {
	ns := core.Namespace(c.String("namespace"))
	if !ns.IsValid() {
		return fmt.Errorf("invalid namespace %q: must be one of acts, judgments", c.String("namespace"))
	}

	config := &ingestion.ReindexConfig{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	reindexer, err := lib.NewReindexer(config, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create reindexer: %w", err)
	}

	if err := reindexer.Run(context.Background(), ns); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	ctx := context.Background()
	total := 0
	for _, ns := range core.Namespaces() {
		count, err := lib.DocumentRepository().CountDocuments(ctx, ns)
		if err != nil {
			return fmt.Errorf("failed to count %q: %w", ns, err)
		}
		fmt.Printf("%-12s %d documents\n", ns, count)
		total += count
	}
	fmt.Printf("%-12s %d documents\n", "total", total)
	return nil
}

func summarize(content string) string {
	const max = 120
	content = strings.Join(strings.Fields(content), " ")
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
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
