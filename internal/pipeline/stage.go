package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tracksplitter/internal/logging"
	"tracksplitter/internal/runner"
	"tracksplitter/internal/services"
)

type stageFunc func(ctx context.Context, logger *slog.Logger) error

// runStage executes fn with a stage-scoped context and logger and records its
// lifecycle. Errors are returned unchanged.
func (p *Pipeline) runStage(ctx context.Context, name string, fn stageFunc) error {
	stageCtx := services.WithStage(ctx, name)
	stageLogger := logging.WithContext(stageCtx, p.logger)
	label := stageLabel(name)
	start := time.Now()

	stageLogger.Info("stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String("stage_label", label),
	)
	if err := fn(stageCtx, stageLogger); err != nil {
		attrs := []slog.Attr{
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.String("stage_label", label),
			logging.Duration("stage_duration", time.Since(start)),
			logging.Error(err),
		}
		if code := runner.ExitCode(err); code >= 0 {
			attrs = append(attrs, logging.Int("exit_code", code))
		}
		if errors.Is(err, context.Canceled) {
			stageLogger.Warn("stage interrupted", logging.Args(attrs...)...)
			return err
		}
		stageLogger.Error("stage failed", logging.Args(attrs...)...)
		return err
	}
	stageLogger.Info("stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.String("stage_label", label),
		logging.Duration("stage_duration", time.Since(start)),
	)
	return nil
}

func (p *Pipeline) skipStage(ctx context.Context, name, reason string) {
	logger := logging.WithContext(services.WithStage(ctx, name), p.logger)
	logger.Info("stage skipped",
		logging.String(logging.FieldEventType, "stage_skipped"),
		logging.String("stage_label", stageLabel(name)),
		logging.String("reason", reason),
	)
}

func stageLabel(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
}
