// Package pipeline runs one analysis end to end: fetch with retries, analyze,
// then optionally archive the report.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/redlytics/internal/failure"
	"github.com/spacesedan/redlytics/internal/models"
	"github.com/spacesedan/redlytics/internal/resilience"
)

type ActivitySource interface {
	FetchActivity(ctx context.Context, username string) (models.RawActivitySet, error)
}

type ReportAnalyzer interface {
	Analyze(set models.RawActivitySet, username string) (*models.AnalysisResult, error)
}

type ReportArchive interface {
	Save(ctx context.Context, result *models.AnalysisResult, requestID string) error
}

type Runner struct {
	source   ActivitySource
	analyzer ReportAnalyzer
	archive  ReportArchive
	policy   resilience.Policy
}

type Option func(*Runner)

func WithArchive(archive ReportArchive) Option {
	return func(r *Runner) { r.archive = archive }
}

func WithPolicy(policy resilience.Policy) Option {
	return func(r *Runner) { r.policy = policy }
}

func NewRunner(source ActivitySource, analyzer ReportAnalyzer, opts ...Option) *Runner {
	r := &Runner{
		source:   source,
		analyzer: analyzer,
		policy:   resilience.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run produces the report for username. Errors carry a failure.Kind; pass
// them to UserMessage for display.
func (r *Runner) Run(ctx context.Context, username string) (*models.AnalysisResult, error) {
	username = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(username), "u/"))
	requestID := uuid.NewString()
	logger := slog.With(
		slog.String("request_id", requestID),
		slog.String("username", username))

	start := time.Now()
	logger.Info("[Pipeline] Starting analysis")

	set, err := resilience.Retry(ctx, r.policy, func(ctx context.Context) (models.RawActivitySet, error) {
		return r.source.FetchActivity(ctx, username)
	})
	if err != nil {
		logger.Error("[Pipeline] Acquisition failed",
			slog.String("kind", failure.KindOf(err).String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	if set.IsEmpty() {
		logger.Warn("[Pipeline] No posts or comments found")
		return nil, &failure.Error{Kind: failure.EmptyActivity, Username: username}
	}

	result, err := r.analyzer.Analyze(set, username)
	if err != nil {
		logger.Error("[Pipeline] Analysis failed", slog.String("error", err.Error()))
		return nil, err
	}

	if r.archive != nil {
		if err := r.archive.Save(ctx, result, requestID); err != nil {
			logger.Warn("[Pipeline] Failed to archive report", slog.String("error", err.Error()))
		}
	}

	logger.Info("[Pipeline] Analysis complete",
		slog.Int("posts", result.TotalPosts),
		slog.Int("comments", result.TotalComments),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}
