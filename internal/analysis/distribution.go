package analysis

import (
	"regexp"
	"unicode/utf8"

	"github.com/spacesedan/redlytics/internal/models"
	"github.com/spacesedan/redlytics/internal/sentiment"
)

const (
	PostTypeText  = "Text"
	PostTypeLink  = "Link"
	PostTypeImage = "Image"
	PostTypeVideo = "Video"
	PostTypeOther = "Other"
)

var imageTitlePattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif)$`)

type lengthBucket struct {
	name string
	max  int
}

// max < 0 marks the open-ended last bucket.
var commentLengthBuckets = []lengthBucket{
	{"0-25 chars", 25},
	{"26-100 chars", 100},
	{"101-250 chars", 250},
	{"251-500 chars", 500},
	{"501-1000 chars", 1000},
	{"1000+ chars", -1},
}

func applyDistributions(r *models.AnalysisResult, set models.RawActivitySet) {
	r.SentimentDistribution = sentimentDistribution(set.Comments)
	r.PostTypes = postTypes(set.Posts)
	r.CommentLengthDistribution = commentLengths(set.Comments)
}

func sentimentDistribution(comments []models.NormalizedComment) []models.NameValue {
	counts := map[string]int{}
	for _, c := range comments {
		counts[sentiment.Label(c.Sentiment.Comparative)]++
	}
	return []models.NameValue{
		{Name: sentiment.LabelPositive, Value: counts[sentiment.LabelPositive]},
		{Name: sentiment.LabelNeutral, Value: counts[sentiment.LabelNeutral]},
		{Name: sentiment.LabelNegative, Value: counts[sentiment.LabelNegative]},
	}
}

// ClassifyPost picks the first matching type: video, image, text, link, other.
func ClassifyPost(p models.RawPost) string {
	switch {
	case p.IsVideo:
		return PostTypeVideo
	case p.PostHint == "image" || imageTitlePattern.MatchString(p.Title):
		return PostTypeImage
	case p.IsSelf:
		return PostTypeText
	case p.PostHint == "link" || (!p.IsSelf && p.SelfText == ""):
		return PostTypeLink
	default:
		return PostTypeOther
	}
}

func postTypes(posts []models.RawPost) []models.NameValue {
	counts := map[string]int{}
	for _, p := range posts {
		counts[ClassifyPost(p)]++
	}

	out := []models.NameValue{}
	for _, name := range []string{PostTypeText, PostTypeLink, PostTypeImage, PostTypeVideo, PostTypeOther} {
		if counts[name] > 0 {
			out = append(out, models.NameValue{Name: name, Value: counts[name]})
		}
	}
	return out
}

func commentLengths(comments []models.NormalizedComment) []models.NameValue {
	out := make([]models.NameValue, len(commentLengthBuckets))
	for i, b := range commentLengthBuckets {
		out[i].Name = b.name
	}
	for _, c := range comments {
		n := utf8.RuneCountInString(c.Body)
		for i, b := range commentLengthBuckets {
			if b.max < 0 || n <= b.max {
				out[i].Value++
				break
			}
		}
	}
	return out
}
