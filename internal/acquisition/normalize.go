package acquisition

import (
	"encoding/json"

	"github.com/spacesedan/redlytics/internal/models"
	"github.com/spacesedan/redlytics/internal/sentiment"
)

// skipFunc is called with the index of a child whose data could not be
// decoded. The decoders below leave such children out, and skip children of
// an unexpected kind silently.
type skipFunc func(index int, err error)

// decodeComments scores every comment body. Sentiment is computed here and
// nowhere else.
func decodeComments(children []models.Thing, skip skipFunc) []models.NormalizedComment {
	out := make([]models.NormalizedComment, 0, len(children))
	for i, child := range children {
		if child.Kind != models.KindComment || !hasData(child) {
			continue
		}
		var data models.APICommentData
		if err := json.Unmarshal(child.Data, &data); err != nil {
			skip(i, err)
			continue
		}
		raw := models.RawComment{
			ID:              data.ID,
			Subreddit:       data.Subreddit,
			Body:            data.Body,
			Score:           data.Score,
			CreatedUTC:      int64(data.CreatedUTC),
			AuthorFlairText: data.AuthorFlairText,
			Awardings:       toAwardings(data.AllAwardings),
			Permalink:       data.Permalink,
		}
		out = append(out, models.NormalizedComment{
			RawComment: raw,
			Sentiment:  sentiment.Annotate(raw.Body),
		})
	}
	return out
}

func decodePosts(children []models.Thing, skip skipFunc) []models.RawPost {
	out := make([]models.RawPost, 0, len(children))
	for i, child := range children {
		if child.Kind != models.KindPost || !hasData(child) {
			continue
		}
		var data models.APIPostData
		if err := json.Unmarshal(child.Data, &data); err != nil {
			skip(i, err)
			continue
		}
		out = append(out, models.RawPost{
			ID:              data.ID,
			Subreddit:       data.Subreddit,
			Title:           data.Title,
			SelfText:        data.Selftext,
			Score:           data.Score,
			CreatedUTC:      int64(data.CreatedUTC),
			AuthorFlairText: data.AuthorFlairText,
			Awardings:       toAwardings(data.AllAwardings),
			IsSelf:          data.IsSelf,
			IsVideo:         data.IsVideo,
			PostHint:        data.PostHint,
		})
	}
	return out
}

func decodeTrophies(children []models.Thing, skip skipFunc) []models.Trophy {
	out := make([]models.Trophy, 0, len(children))
	for i, child := range children {
		if child.Kind != models.KindTrophy || !hasData(child) {
			continue
		}
		var data models.APITrophyData
		if err := json.Unmarshal(child.Data, &data); err != nil {
			skip(i, err)
			continue
		}
		out = append(out, models.Trophy{
			Name:        data.Name,
			IconURL:     data.Icon70,
			Description: data.Description,
		})
	}
	return out
}

func hasData(t models.Thing) bool {
	return len(t.Data) > 0 && string(t.Data) != "null"
}

func toAwardings(in []models.APIAwarding) []models.Awarding {
	out := make([]models.Awarding, 0, len(in))
	for _, a := range in {
		out = append(out, models.Awarding{
			ID:      a.ID,
			Name:    a.Name,
			Count:   a.Count,
			IconURL: a.IconURL,
		})
	}
	return out
}
