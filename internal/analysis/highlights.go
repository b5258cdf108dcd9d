package analysis

import (
	"sort"
	"strings"

	"github.com/spacesedan/redlytics/internal/models"
)

const TOP_AWARDS = 10

func applyHighlights(r *models.AnalysisResult, comments []models.NormalizedComment) {
	if len(comments) == 0 {
		return
	}

	best, worst := 0, 0
	for i := range comments {
		if comments[i].Score > comments[best].Score {
			best = i
		}
		if comments[i].Score < comments[worst].Score {
			worst = i
		}
	}
	r.BestComment = commentCopy(comments[best])
	r.WorstComment = commentCopy(comments[worst])

	positive, negative := -1, -1
	for i := range comments {
		if comments[i].Sentiment.Score == 0 {
			continue
		}
		cmp := comments[i].Sentiment.Comparative
		if positive < 0 || cmp > comments[positive].Sentiment.Comparative {
			positive = i
		}
		if negative < 0 || cmp < comments[negative].Sentiment.Comparative {
			negative = i
		}
	}
	if positive >= 0 {
		r.MostPositiveComment = commentCopy(comments[positive])
		r.MostNegativeComment = commentCopy(comments[negative])
	}
}

func commentCopy(c models.NormalizedComment) *models.NormalizedComment {
	return &c
}

func isGilded(a models.Awarding) bool {
	return strings.Contains(a.Name, "Gold") || strings.Contains(a.Name, "Platinum")
}

func applyAwards(r *models.AnalysisResult, items []models.ActivityItem) {
	r.GildedContent = []models.ActivityItem{}
	totals := map[string]*models.Awarding{}
	var order []string

	for _, it := range items {
		awards := it.Awards()
		gilded := false
		for _, a := range awards {
			r.TotalAwards += a.Count
			if isGilded(a) {
				gilded = true
			}
			agg, ok := totals[a.Name]
			if !ok {
				cp := a
				cp.Count = 0
				agg = &cp
				totals[a.Name] = agg
				order = append(order, a.Name)
			}
			agg.Count += a.Count
		}
		if gilded {
			r.GildedContent = append(r.GildedContent, itemCopy(it))
		}
	}

	sort.SliceStable(r.GildedContent, func(i, j int) bool {
		return r.GildedContent[i].Score() > r.GildedContent[j].Score()
	})

	r.TopAwards = make([]models.Awarding, 0, len(order))
	for _, name := range order {
		r.TopAwards = append(r.TopAwards, *totals[name])
	}
	sort.SliceStable(r.TopAwards, func(i, j int) bool { return r.TopAwards[i].Count > r.TopAwards[j].Count })
	if len(r.TopAwards) > TOP_AWARDS {
		r.TopAwards = r.TopAwards[:TOP_AWARDS]
	}
}

// itemCopy detaches a result item from the cached activity set.
func itemCopy(it models.ActivityItem) models.ActivityItem {
	switch it.Kind {
	case models.ItemKindPost:
		p := *it.Post
		return models.PostItem(&p)
	case models.ItemKindComment:
		c := *it.Comment
		return models.CommentItem(&c)
	}
	return it
}
