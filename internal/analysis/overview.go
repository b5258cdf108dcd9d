package analysis

import (
	"math"

	"github.com/spacesedan/redlytics/internal/models"
)

const SECONDS_PER_DAY = 24 * 60 * 60

func applyOverview(r *models.AnalysisResult, set models.RawActivitySet, items []models.ActivityItem) {
	r.TotalPosts = len(set.Posts)
	r.TotalComments = len(set.Comments)

	for _, p := range set.Posts {
		r.PostKarma += p.Score
	}
	for _, c := range set.Comments {
		r.CommentKarma += c.Score
	}
	r.TotalKarma = r.PostKarma + r.CommentKarma

	if r.TotalPosts > 0 {
		r.AvgPostScore = float64(r.PostKarma) / float64(r.TotalPosts)
	}
	if r.TotalComments > 0 {
		r.AvgCommentScore = float64(r.CommentKarma) / float64(r.TotalComments)
	}

	r.DataSpansDays = dataSpansDays(items)
}

// dataSpansDays is the ceiling of the first-to-last span in days, counting
// only positive timestamps. Fewer than two timestamps count as one day.
func dataSpansDays(items []models.ActivityItem) int {
	var first, last int64
	n := 0
	for _, it := range items {
		ts := it.CreatedUTC()
		if ts <= 0 {
			continue
		}
		if n == 0 || ts < first {
			first = ts
		}
		if n == 0 || ts > last {
			last = ts
		}
		n++
	}
	if n < 2 {
		return 1
	}
	return int(math.Ceil(float64(last-first) / SECONDS_PER_DAY))
}
