package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/redlytics/internal/models"
)

func commentsIn(counts map[string]int, order []string) []models.NormalizedComment {
	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	var out []models.NormalizedComment
	for _, sub := range order {
		for i := 0; i < counts[sub]; i++ {
			out = append(out, newComment(sub, sub, "words here", 1, ts))
			ts = ts.Add(time.Minute)
		}
	}
	return out
}

func TestStickinessBuckets(t *testing.T) {
	order := []string{"a", "b", "c", "d"}
	set := models.RawActivitySet{Comments: commentsIn(map[string]int{"a": 5, "b": 3, "c": 2, "d": 1}, order)}

	r, err := newTestAnalyzer().Analyze(set, "u")
	require.NoError(t, err)
	assert.Equal(t, []models.StickinessBucket{
		{Category: StickinessTop, Value: 5, Subreddits: []string{"a"}},
		{Category: StickinessSecond, Value: 5, Subreddits: []string{"b", "c"}},
		{Category: StickinessOther, Value: 1, Subreddits: []string{}},
	}, r.SubredditStickiness)
}

func TestStickinessNeedsThreeSubredditsForSecondTier(t *testing.T) {
	set := models.RawActivitySet{Comments: commentsIn(map[string]int{"a": 2, "b": 1}, []string{"a", "b"})}

	r, err := newTestAnalyzer().Analyze(set, "u")
	require.NoError(t, err)
	assert.Equal(t, []models.StickinessBucket{
		{Category: StickinessTop, Value: 2, Subreddits: []string{"a"}},
		{Category: StickinessOther, Value: 1, Subreddits: []string{}},
	}, r.SubredditStickiness)

	set = models.RawActivitySet{Comments: commentsIn(map[string]int{"a": 2, "b": 1, "c": 1}, []string{"a", "b", "c"})}
	r, err = newTestAnalyzer().Analyze(set, "u")
	require.NoError(t, err)
	assert.Equal(t, []models.StickinessBucket{
		{Category: StickinessTop, Value: 2, Subreddits: []string{"a"}},
		{Category: StickinessSecond, Value: 2, Subreddits: []string{"b", "c"}},
	}, r.SubredditStickiness)
}

func TestSubredditRankingKeepsFirstSeenOnTies(t *testing.T) {
	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	set := models.RawActivitySet{
		Posts: []models.RawPost{newPost("p1", "Beta", 10, ts)},
		Comments: []models.NormalizedComment{
			newComment("c1", "alpha", "x", 4, ts),
			newComment("c2", "alpha", "y", 6, ts),
			newComment("c3", "Gamma", "z", 10, ts),
			newComment("c4", "beta", "z", 1, ts),
		},
	}

	r, err := newTestAnalyzer().Analyze(set, "u")
	require.NoError(t, err)

	assert.Equal(t, []models.NameValue{
		{Name: "alpha", Value: 2},
		{Name: "Beta", Value: 1},
		{Name: "Gamma", Value: 1},
		{Name: "beta", Value: 1},
	}, r.TopSubredditsByActivity)
	assert.Equal(t, []models.SubredditKarma{
		{Name: "Beta", Karma: 10},
		{Name: "alpha", Karma: 10},
		{Name: "Gamma", Karma: 10},
		{Name: "beta", Karma: 1},
	}, r.TopSubredditsByKarma)
}

func TestSentimentBySubreddit(t *testing.T) {
	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	set := models.RawActivitySet{Comments: []models.NormalizedComment{
		newComment("1", "happy", "love", 1, ts),
		newComment("2", "happy", "love love", 1, ts),
		newComment("3", "happy", "neutral words", 1, ts),
		newComment("4", "small", "love", 1, ts),
		newComment("5", "small", "love", 1, ts),
	}}
	for i, v := range []float64{0.5, 0.7, 0} {
		set.Comments[i].Sentiment.Intensity = v
	}

	r, err := newTestAnalyzer().Analyze(set, "u")
	require.NoError(t, err)
	require.Len(t, r.SentimentBySubreddit, 1)
	assert.Equal(t, "happy", r.SentimentBySubreddit[0].Name)
	assert.Equal(t, 3, r.SentimentBySubreddit[0].Count)
	assert.InDelta(t, 2.0, r.SentimentBySubreddit[0].AvgScore, 1e-9)
	assert.InDelta(t, 0.4, r.SentimentBySubreddit[0].AvgIntensity, 1e-9)
}

func TestTopMentionedSubreddits(t *testing.T) {
	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	set := models.RawActivitySet{Comments: []models.NormalizedComment{
		newComment("1", "x", "try r/golang or r/golang, not r/ab", 1, ts),
		newComment("2", "x", "see r/Alice and r/rust_lang", 1, ts),
		newComment("3", "x", "r/rust_lang again", 1, ts),
	}}

	r, err := newTestAnalyzer().Analyze(set, "alice")
	require.NoError(t, err)
	assert.Equal(t, []models.NameValue{
		{Name: "golang", Value: 2},
		{Name: "rust_lang", Value: 2},
	}, r.TopMentionedSubreddits)
}

func TestUserFlairsPreferMostRecent(t *testing.T) {
	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	old := newComment("1", "golang", "x", 1, ts)
	old.AuthorFlairText = strPtr("Newbie")
	recent := newComment("2", "golang", "y", 1, ts.Add(time.Hour))
	recent.AuthorFlairText = strPtr("Gopher")
	post := newPost("p", "rust", 1, ts.Add(30*time.Minute))
	post.AuthorFlairText = strPtr("Crab")
	none := newComment("3", "python", "z", 1, ts.Add(2*time.Hour))

	set := models.RawActivitySet{
		Posts:    []models.RawPost{post},
		Comments: []models.NormalizedComment{old, recent, none},
	}

	r, err := newTestAnalyzer().Analyze(set, "u")
	require.NoError(t, err)
	assert.Equal(t, []models.UserFlair{
		{Subreddit: "golang", Text: "Gopher"},
		{Subreddit: "rust", Text: "Crab"},
	}, r.UserFlairs)
}
