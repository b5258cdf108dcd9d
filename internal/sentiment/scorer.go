// Package sentiment scores comment text. The lexicon score drives every
// statistic in a report; the VADER intensity only feeds the per-subreddit
// mood averages.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/spacesedan/redlytics/internal/models"
)

const (
	POSITIVE_THRESHOLD = 0.05
	NEGATIVE_THRESHOLD = -0.05

	LabelPositive = "Positive"
	LabelNeutral  = "Neutral"
	LabelNegative = "Negative"
)

type Result struct {
	Score       float64
	Comparative float64
}

// Score sums lexicon polarity over the tokens of text. Comparative is Score
// divided by the token count, 0 when text has no tokens.
func Score(text string) Result {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Result{}
	}

	var score int
	for _, tok := range tokens {
		score += polarities[tok]
	}

	return Result{
		Score:       float64(score),
		Comparative: float64(score) / float64(len(tokens)),
	}
}

// Tokenize lowercases text and splits it into runs of letters, digits,
// apostrophes and hyphens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-')
	})
}

func Label(comparative float64) string {
	switch {
	case comparative > POSITIVE_THRESHOLD:
		return LabelPositive
	case comparative < NEGATIVE_THRESHOLD:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Annotate is the only place a comment body gets scored.
func Annotate(body string) models.Sentiment {
	r := Score(body)
	return models.Sentiment{
		Score:       r.Score,
		Comparative: r.Comparative,
		Intensity:   Intensity(body),
	}
}
