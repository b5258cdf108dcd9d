package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreKnownPhrases(t *testing.T) {
	pos := Score("I love this!")
	assert.Equal(t, 3.0, pos.Score)
	assert.InDelta(t, 1.0, pos.Comparative, 1e-9)
	assert.Equal(t, LabelPositive, Label(pos.Comparative))

	neg := Score("terrible advice")
	assert.Equal(t, -3.0, neg.Score)
	assert.InDelta(t, -1.5, neg.Comparative, 1e-9)
	assert.Equal(t, LabelNegative, Label(neg.Comparative))
}

func TestScoreEmptyAndUnknown(t *testing.T) {
	assert.Equal(t, Result{}, Score(""))
	assert.Equal(t, Result{}, Score("   ...!!! "))

	r := Score("the quick brown fox")
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, 0.0, r.Comparative)
	assert.Equal(t, LabelNeutral, Label(r.Comparative))
}

func TestScoreDeterministic(t *testing.T) {
	text := "What an awesome, wonderful day. Sadly the ending was awful."
	first := Score(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(text))
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, Score("GREAT job"), Score("great job"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"don't", "over-think", "it", "42"}, Tokenize("Don't over-think it... 42!"))
}

func TestLabelThresholds(t *testing.T) {
	assert.Equal(t, LabelNeutral, Label(0.05))
	assert.Equal(t, LabelNeutral, Label(-0.05))
	assert.Equal(t, LabelPositive, Label(0.051))
	assert.Equal(t, LabelNegative, Label(-0.051))
}

func TestAnnotate(t *testing.T) {
	s := Annotate("I love this!")
	assert.Equal(t, 3.0, s.Score)
	assert.InDelta(t, 1.0, s.Comparative, 1e-9)
	assert.Greater(t, s.Intensity, 0.0)
}

func TestScoreUsesVaderWords(t *testing.T) {
	assert.Equal(t, -4.0, Score("wtf").Score)
	assert.Equal(t, 2.0, Score("thanks").Score)
	assert.Equal(t, 4.0, Score("lmao").Score)

	// curated entries win over the rescaled VADER value
	assert.Equal(t, 3.0, Score("love").Score)
}

func TestBuildPolarities(t *testing.T) {
	got := buildPolarities(
		map[string]float64{
			"good":  1.9,
			":)":    2.0,
			"Meh":   -0.3,
			"okish": 0.2,
			"huge":  4.0,
			"vile":  -4.0,
			"fine":  0.8,
		},
		map[string]int{"fine": 2},
	)

	assert.Equal(t, map[string]int{
		"good": 2,
		"huge": 5,
		"vile": -5,
		"fine": 2,
	}, got)
}
