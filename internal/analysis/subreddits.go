package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/spacesedan/redlytics/internal/models"
)

const (
	TOP_SUBREDDITS           = 10
	TOP_MENTIONS             = 5
	MAX_FLAIRS               = 10
	MIN_COMMENTS_FOR_MOOD    = 3
	MIN_SUBS_FOR_SECOND_TIER = 3

	StickinessTop    = "Top Subreddit"
	StickinessSecond = "Subreddits 2-3"
	StickinessOther  = "Other"
)

var mentionPattern = regexp.MustCompile(`\br/([a-zA-Z0-9_]{3,21})\b`)

type subredditStats struct {
	name     string
	activity int
	karma    int
	comments []*models.NormalizedComment
}

// groupBySubreddit keeps subreddits in first-seen order so ties in later
// stable sorts resolve the same way every run.
func groupBySubreddit(items []models.ActivityItem) []*subredditStats {
	index := map[string]*subredditStats{}
	var ordered []*subredditStats
	for _, it := range items {
		name := it.SubredditName()
		s, ok := index[name]
		if !ok {
			s = &subredditStats{name: name}
			index[name] = s
			ordered = append(ordered, s)
		}
		s.activity++
		s.karma += it.Score()
		if it.Kind == models.ItemKindComment {
			s.comments = append(s.comments, it.Comment)
		}
	}
	return ordered
}

func applySubreddits(r *models.AnalysisResult, items []models.ActivityItem, comments []models.NormalizedComment, username string) {
	groups := groupBySubreddit(items)

	byActivity := append([]*subredditStats(nil), groups...)
	sort.SliceStable(byActivity, func(i, j int) bool { return byActivity[i].activity > byActivity[j].activity })

	byKarma := append([]*subredditStats(nil), groups...)
	sort.SliceStable(byKarma, func(i, j int) bool { return byKarma[i].karma > byKarma[j].karma })

	r.TopSubredditsByActivity = make([]models.NameValue, 0, TOP_SUBREDDITS)
	for _, s := range byActivity[:min(TOP_SUBREDDITS, len(byActivity))] {
		r.TopSubredditsByActivity = append(r.TopSubredditsByActivity, models.NameValue{Name: s.name, Value: s.activity})
	}

	r.TopSubredditsByKarma = make([]models.SubredditKarma, 0, TOP_SUBREDDITS)
	for _, s := range byKarma[:min(TOP_SUBREDDITS, len(byKarma))] {
		r.TopSubredditsByKarma = append(r.TopSubredditsByKarma, models.SubredditKarma{Name: s.name, Karma: s.karma})
	}

	r.SubredditStickiness = stickiness(byActivity, len(items))
	r.SentimentBySubreddit = sentimentBySubreddit(groups)
	r.TopMentionedSubreddits = topMentions(comments, username)
	r.UserFlairs = userFlairs(items)
}

// stickiness splits total activity into the top subreddit, ranks 2 and 3, and
// everything else. Zero buckets are left out.
func stickiness(ranked []*subredditStats, total int) []models.StickinessBucket {
	buckets := []models.StickinessBucket{}
	if len(ranked) == 0 {
		return buckets
	}

	top := ranked[0]
	covered := top.activity
	if top.activity > 0 {
		buckets = append(buckets, models.StickinessBucket{
			Category:   StickinessTop,
			Value:      top.activity,
			Subreddits: []string{top.name},
		})
	}

	if len(ranked) >= MIN_SUBS_FOR_SECOND_TIER {
		second := ranked[1].activity + ranked[2].activity
		covered += second
		if second > 0 {
			buckets = append(buckets, models.StickinessBucket{
				Category:   StickinessSecond,
				Value:      second,
				Subreddits: []string{ranked[1].name, ranked[2].name},
			})
		}
	}

	if other := total - covered; other > 0 {
		buckets = append(buckets, models.StickinessBucket{
			Category:   StickinessOther,
			Value:      other,
			Subreddits: []string{},
		})
	}
	return buckets
}

func sentimentBySubreddit(groups []*subredditStats) []models.SubredditSentiment {
	out := []models.SubredditSentiment{}
	for _, s := range groups {
		if len(s.comments) < MIN_COMMENTS_FOR_MOOD {
			continue
		}
		var sum, intensity float64
		for _, c := range s.comments {
			sum += c.Sentiment.Comparative
			intensity += c.Sentiment.Intensity
		}
		n := float64(len(s.comments))
		out = append(out, models.SubredditSentiment{
			Name:         s.name,
			AvgScore:     sum / n,
			AvgIntensity: intensity / n,
			Count:        len(s.comments),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > TOP_SUBREDDITS {
		out = out[:TOP_SUBREDDITS]
	}
	return out
}

// topMentions counts r/name references in comment bodies, skipping mentions
// of the analysed user's own name.
func topMentions(comments []models.NormalizedComment, username string) []models.NameValue {
	counts := map[string]int{}
	var order []string
	for _, c := range comments {
		for _, m := range mentionPattern.FindAllStringSubmatch(c.Body, -1) {
			name := m[1]
			if strings.EqualFold(name, username) {
				continue
			}
			if _, ok := counts[name]; !ok {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	out := make([]models.NameValue, 0, len(order))
	for _, name := range order {
		out = append(out, models.NameValue{Name: name, Value: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > TOP_MENTIONS {
		out = out[:TOP_MENTIONS]
	}
	return out
}

// userFlairs reports the most recent flair per subreddit.
func userFlairs(items []models.ActivityItem) []models.UserFlair {
	recent := append([]models.ActivityItem(nil), items...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedUTC() > recent[j].CreatedUTC() })

	out := []models.UserFlair{}
	seen := map[string]bool{}
	for _, it := range recent {
		flair := it.Flair()
		sub := it.SubredditName()
		if flair == "" || seen[sub] {
			continue
		}
		seen[sub] = true
		out = append(out, models.UserFlair{Subreddit: sub, Text: flair})
		if len(out) == MAX_FLAIRS {
			break
		}
	}
	return out
}
