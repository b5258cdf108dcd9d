// Package analysis turns a user's raw activity set into an AnalysisResult.
package analysis

import (
	"errors"
	"time"

	"github.com/spacesedan/redlytics/internal/failure"
	"github.com/spacesedan/redlytics/internal/models"
)

type Analyzer struct {
	now func() time.Time
}

type Option func(*Analyzer)

// WithClock sets the reference time for the trailing-year heatmap and
// GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze folds posts then comments, each in acquisition order, into a single
// report. The set is only read.
func (a *Analyzer) Analyze(set models.RawActivitySet, username string) (*models.AnalysisResult, error) {
	if set.IsEmpty() {
		return nil, &failure.Error{
			Kind:     failure.EmptyActivity,
			Username: username,
			Err:      errors.New("no posts or comments to analyze"),
		}
	}

	now := a.now().UTC()
	items := set.Items()

	result := &models.AnalysisResult{
		Username:    username,
		GeneratedAt: now,
	}

	applyOverview(result, set, items)
	applyActivity(result, items, now)
	applySubreddits(result, items, set.Comments, username)
	applyHighlights(result, set.Comments)
	applyAwards(result, items)
	applyDistributions(result, set)
	result.Vocabulary = analyzeVocabulary(set.Comments)

	result.Trophies = make([]models.Trophy, len(set.Trophies))
	copy(result.Trophies, set.Trophies)

	return result, nil
}
