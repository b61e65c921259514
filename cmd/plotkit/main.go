package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vampirenirmal/plotkit/internal/agent"
	"github.com/vampirenirmal/plotkit/internal/config"
	"github.com/vampirenirmal/plotkit/internal/plot"
	"github.com/vampirenirmal/plotkit/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	registry := plot.NewRegistry(logger)
	plot.RegisterBuiltins(registry)

	if cfg.Templates.Dir != "" {
		discoverer := plot.NewDiscoverer(registry, logger)
		if _, err := discoverer.Discover(cfg.Templates.Dir); err != nil {
			logger.Warn("template discovery failed", "dir", cfg.Templates.Dir, "error", err)
		}
	}

	validator := plot.NewValidator(buildClient(cfg, logger), logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "list":
		runList(registry)
	case "validate":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		runValidate(ctx, registry, validator, os.Args[2], os.Args[3])
	case "analyze":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		analyzer := plot.NewAnalyzer(validator, logger, plot.WithConcurrency(4))
		runAnalyze(ctx, registry, analyzer, os.Args[2])
	case "export":
		dir := cfg.Templates.ExportDir
		if len(os.Args) >= 3 {
			dir = os.Args[2]
		}
		runExport(ctx, registry, dir, logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: plotkit <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  list                            List registered plot templates")
	fmt.Println("  validate <template> <story>     Validate a story file against a template")
	fmt.Println("  analyze <story>                 Find the best matching structure for a story")
	fmt.Println("  export [dir]                    Export templates as YAML definitions")
}

func configPath() string {
	if path := os.Getenv("PLOTKIT_CONFIG"); path != "" {
		return path
	}
	return "plotkit.yaml"
}

func logLevel() slog.Level {
	if os.Getenv("PLOTKIT_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// buildClient picks the AI collaborator from config; nil means the
// validator runs its deterministic strategy only.
func buildClient(cfg *config.Config, logger *slog.Logger) plot.TextCompleter {
	var client agent.AIClient
	switch cfg.AI.Provider {
	case "anthropic":
		opts := []agent.Option{agent.WithLogger(logger)}
		if cfg.AI.BaseURL != "" || cfg.AI.Model != "" {
			opts = append(opts, agent.WithAPIConfig(cfg.AI.BaseURL, cfg.AI.Model))
		}
		client = agent.NewClient(cfg.AI.APIKey, opts...)
	case "openai":
		client = agent.NewOpenAIClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, logger)
	default:
		return nil
	}

	if cfg.AI.CacheDir != "" {
		ttl := 24 * time.Hour
		if cfg.AI.CacheTTLHours > 0 {
			ttl = time.Duration(cfg.AI.CacheTTLHours) * time.Hour
		}
		cache := agent.NewResponseCache(storage.NewFileSystem(cfg.AI.CacheDir), ttl, logger)
		client = agent.NewCachingClient(client, cache, logger)
	}
	return client
}

func runList(registry *plot.Registry) {
	for _, info := range registry.List() {
		fmt.Printf("%-20s %-18s %s\n", info.Name, info.NarrativeArc, info.Description)
	}
}

func runValidate(ctx context.Context, registry *plot.Registry, validator *plot.Validator, templateName, storyPath string) {
	tmpl, err := registry.Get(templateName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	story, err := os.ReadFile(storyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading story: %v\n", err)
		os.Exit(1)
	}

	result := validator.Validate(ctx, string(story), tmpl.Structure())
	printJSON(result)
}

func runAnalyze(ctx context.Context, registry *plot.Registry, analyzer *plot.Analyzer, storyPath string) {
	story, err := os.ReadFile(storyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading story: %v\n", err)
		os.Exit(1)
	}

	result := analyzer.Analyze(ctx, string(story), registry.Structures())
	printJSON(result)
}

func runExport(ctx context.Context, registry *plot.Registry, dir string, logger *slog.Logger) {
	exporter := plot.NewExporter(registry, storage.NewFileSystem(dir), logger)
	paths, err := exporter.ExportAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting templates: %v\n", err)
		os.Exit(1)
	}
	for _, path := range paths {
		fmt.Println(path)
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
