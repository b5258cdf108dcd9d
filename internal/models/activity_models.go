package models

import (
	"fmt"
	"time"
)

type Awarding struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
	IconURL string `json:"icon_url"`
}

type RawPost struct {
	ID              string     `json:"id"`
	Subreddit       string     `json:"subreddit"`
	Title           string     `json:"title"`
	SelfText        string     `json:"selftext"`
	Score           int        `json:"score"`
	CreatedUTC      int64      `json:"created_utc"`
	AuthorFlairText *string    `json:"author_flair_text,omitempty"`
	Awardings       []Awarding `json:"all_awardings"`
	IsSelf          bool       `json:"is_self"`
	IsVideo         bool       `json:"is_video"`
	PostHint        string     `json:"post_hint,omitempty"`
}

type RawComment struct {
	ID              string     `json:"id"`
	Subreddit       string     `json:"subreddit"`
	Body            string     `json:"body"`
	Score           int        `json:"score"`
	CreatedUTC      int64      `json:"created_utc"`
	AuthorFlairText *string    `json:"author_flair_text,omitempty"`
	Awardings       []Awarding `json:"all_awardings"`
	Permalink       string     `json:"permalink"`
}

// Sentiment is attached to a comment once, at normalization time.
type Sentiment struct {
	Score       float64 `json:"score"`
	Comparative float64 `json:"comparative"`
	// Intensity is the VADER compound value of the markdown-stripped body. Only
	// the per-subreddit mood breakdown reads it.
	Intensity float64 `json:"intensity"`
}

type NormalizedComment struct {
	RawComment
	Sentiment Sentiment `json:"sentiment"`
}

type Trophy struct {
	Name        string  `json:"name"`
	IconURL     string  `json:"icon_url"`
	Description *string `json:"description,omitempty"`
}

// RawActivitySet is everything acquisition knows about one user. It is shared
// through the cache and must be treated as read-only.
type RawActivitySet struct {
	Username  string              `json:"username"`
	Comments  []NormalizedComment `json:"comments"`
	Posts     []RawPost           `json:"posts"`
	Trophies  []Trophy            `json:"trophies"`
	FetchedAt time.Time           `json:"fetched_at"`
}

func (s RawActivitySet) IsEmpty() bool {
	return len(s.Posts) == 0 && len(s.Comments) == 0
}

// Items returns posts followed by comments, in acquisition order.
func (s RawActivitySet) Items() []ActivityItem {
	items := make([]ActivityItem, 0, len(s.Posts)+len(s.Comments))
	for i := range s.Posts {
		items = append(items, PostItem(&s.Posts[i]))
	}
	for i := range s.Comments {
		items = append(items, CommentItem(&s.Comments[i]))
	}
	return items
}

type ItemKind int

const (
	ItemKindPost ItemKind = iota + 1
	ItemKindComment
)

func (k ItemKind) String() string {
	switch k {
	case ItemKindPost:
		return "post"
	case ItemKindComment:
		return "comment"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// ActivityItem is a post or a comment. Exactly one of Post and Comment is set,
// matching Kind.
type ActivityItem struct {
	Kind    ItemKind           `json:"kind"`
	Post    *RawPost           `json:"post,omitempty"`
	Comment *NormalizedComment `json:"comment,omitempty"`
}

func PostItem(p *RawPost) ActivityItem {
	return ActivityItem{Kind: ItemKindPost, Post: p}
}

func CommentItem(c *NormalizedComment) ActivityItem {
	return ActivityItem{Kind: ItemKindComment, Comment: c}
}

func (i ActivityItem) Score() int {
	switch i.Kind {
	case ItemKindPost:
		return i.Post.Score
	case ItemKindComment:
		return i.Comment.Score
	}
	panic(fmt.Sprintf("unknown activity kind %v", i.Kind))
}

func (i ActivityItem) CreatedUTC() int64 {
	switch i.Kind {
	case ItemKindPost:
		return i.Post.CreatedUTC
	case ItemKindComment:
		return i.Comment.CreatedUTC
	}
	panic(fmt.Sprintf("unknown activity kind %v", i.Kind))
}

func (i ActivityItem) Created() time.Time {
	return time.Unix(i.CreatedUTC(), 0).UTC()
}

func (i ActivityItem) SubredditName() string {
	switch i.Kind {
	case ItemKindPost:
		return i.Post.Subreddit
	case ItemKindComment:
		return i.Comment.Subreddit
	}
	panic(fmt.Sprintf("unknown activity kind %v", i.Kind))
}

func (i ActivityItem) Awards() []Awarding {
	switch i.Kind {
	case ItemKindPost:
		return i.Post.Awardings
	case ItemKindComment:
		return i.Comment.Awardings
	}
	panic(fmt.Sprintf("unknown activity kind %v", i.Kind))
}

// Flair returns the author flair text, or "" when none was set.
func (i ActivityItem) Flair() string {
	var flair *string
	switch i.Kind {
	case ItemKindPost:
		flair = i.Post.AuthorFlairText
	case ItemKindComment:
		flair = i.Comment.AuthorFlairText
	default:
		panic(fmt.Sprintf("unknown activity kind %v", i.Kind))
	}
	if flair == nil {
		return ""
	}
	return *flair
}
