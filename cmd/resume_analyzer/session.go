package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/spf13/cobra"
)

// session holds everything a command needs once configuration is resolved
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	lexicons *lexicon.Set
	analyzer *analysis.Analyzer
	engine   *matching.Engine
	printer  *observability.Printer
}

// loadSession resolves configuration (config file, then flags, then
// environment, then defaults), installs the logger and builds the lexicon,
// analyzer and match engine. Any failure here is a startup fault.
func loadSession(cmd *cobra.Command) (*session, error) {
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return nil, err
		}
		cfg = *loadedCfg
	}

	flags := cmd.Flags()
	if flags.Changed("lexicon") {
		cfg.Lexicon = lexiconPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if f := flags.Lookup("top-n"); f != nil && f.Changed {
		n, err := flags.GetInt("top-n")
		if err != nil {
			return nil, err
		}
		cfg.TopN = n
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv(os.Getenv))
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := observability.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := observability.NewLogger(cmd.ErrOrStderr(), level)
	slog.SetDefault(logger)

	set, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	analyzer, err := analysis.New(set, analysis.WithTopN(cfg.TopN), analysis.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	engine := matching.New(analyzer,
		matching.WithTailoringThreshold(cfg.Threshold()),
		matching.WithConcurrency(cfg.Concurrency),
		matching.WithLogger(logger))

	logger.Debug("session ready",
		slog.String("lexicon", lexiconName(cfg.Lexicon)),
		slog.Int("skills", set.Skills.Len()),
		slog.Int("action_verbs", set.ActionVerbs.Len()),
		slog.Int("top_n", cfg.TopN))

	return &session{
		cfg:      cfg,
		logger:   logger,
		lexicons: set,
		analyzer: analyzer,
		engine:   engine,
		printer:  observability.NewPrinter(cmd.ErrOrStderr()),
	}, nil
}

func loadLexicon(path string) (*lexicon.Set, error) {
	if path == "" {
		return lexicon.Default()
	}
	return lexicon.Load(path)
}

func lexiconName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// readDocument ingests a file path or, for http(s) sources, a job posting URL
func (sess *session) readDocument(ctx context.Context, source string) (*ingestion.Document, error) {
	var doc *ingestion.Document
	var err error
	if isURL(source) {
		opts := fetch.DefaultOptions()
		opts.Timeout = sess.cfg.FetchTimeoutDuration()
		doc, err = ingestion.FromURL(ctx, source, opts)
	} else {
		doc, err = ingestion.FromFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	sess.logger.Info("document loaded",
		slog.String("document_id", doc.Metadata.ID.String()),
		slog.String("source", source),
		slog.Int("chars", doc.Metadata.Chars))
	return doc, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// writeResult validates value against the named schema and writes it as
// indented JSON to outPath, or to the command's stdout when outPath is empty.
func writeResult(cmd *cobra.Command, schemaName, outPath string, value any) error {
	if err := schemas.ValidateValue(schemaName, value); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated %s is invalid: %w", schemaName, err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate output against schema: %v\n", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outPath)
	return nil
}
