package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/drosera07/babble/pkg/markov"
)

var (
	Version = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "babble",
		Short: "Trigram Markov sentence generator",
		Long: `babble ingests a plain-text or SQLite corpus into a trigram Markov model
and generates new sentences by random walk over the observed transitions.`,
		Version:      Version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config.json", "path to the JSON config file")

	rootCmd.AddCommand(newGenerateCmd(&configPath))
	rootCmd.AddCommand(newStatsCmd(&configPath))

	return rootCmd
}

func newGenerateCmd(configPath *string) *cobra.Command {
	var (
		count   int
		length  int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sentences from the configured corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, config, logger, err := buildModel(*configPath)
			if err != nil {
				return err
			}

			// Flags win over the config file when set.
			if count <= 0 {
				count = config.Sentences
			}
			if length <= 0 {
				length = config.MaxLength
			}

			var out bytes.Buffer
			for i := 0; i < count; i++ {
				sentence, err := model.Generate(length)
				if err != nil {
					return fmt.Errorf("generation failed: %w", err)
				}
				out.WriteString(sentence)
				out.WriteByte('\n')
			}

			if outPath != "" {
				if err = atomic.WriteFile(outPath, &out); err != nil {
					return fmt.Errorf("failed to write output file: %w", err)
				}
				logger.Info("Output written",
					slog.String("path", outPath),
					slog.Int("sentences", count),
				)
				return nil
			}

			_, err = out.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of sentences to generate (default from config)")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "maximum tokens per sentence (default from config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output atomically to this file instead of stdout")

	return cmd
}

func newStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show model statistics for the configured corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, _, _, err := buildModel(*configPath)
			if err != nil {
				return err
			}

			stats := model.Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeds: %d\ncontexts: %d\ntransitions: %d\n",
				stats.Seeds, stats.Contexts, stats.Transitions)
			return err
		},
	}
}

// buildModel loads the config, constructs the model from it, and ingests the
// configured corpus sources.
func buildModel(configPath string) (*markov.Model, *Config, *slog.Logger, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))

	letterCase, err := markov.ParseLetterCase(config.LetterCase)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bad letter_case setting: %w", err)
	}

	opts := []markov.Option{markov.WithLetterCase(letterCase)}
	for _, pattern := range config.Filters {
		opts = append(opts, markov.WithFilter(pattern))
	}

	model, err := markov.NewModel(opts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to construct model: %w", err)
	}
	model.SetLogger(logger)

	var total int
	if config.CorpusPath != "" {
		n, err := loadCorpusFile(model, config.CorpusPath)
		if err != nil {
			return nil, nil, nil, err
		}
		total += n
	}
	if config.Database != nil && config.Database.Path != "" {
		n, err := loadCorpusDB(model, config.Database.Path, config.Database.Query)
		if err != nil {
			return nil, nil, nil, err
		}
		total += n
	}
	logger.Info("Corpus ingested", slog.Int("sentences_accepted", total))

	return model, config, logger, nil
}

// parseLogLevel maps the config string onto a slog level, defaulting to info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
