package models

import "encoding/json"

// Listing kind discriminators used by the upstream API.
const (
	KindComment = "t1"
	KindPost    = "t3"
	KindTrophy  = "t6"
)

type ListingResponse struct {
	Kind string      `json:"kind"`
	Data ListingData `json:"data"`
}

type ListingData struct {
	After    *string `json:"after"`
	Children []Thing `json:"children"`
}

// NextCursor returns the "after" token, or "" once the listing is exhausted.
func (d ListingData) NextCursor() string {
	if d.After == nil {
		return ""
	}
	return *d.After
}

// Thing is one listing child. Data is decoded lazily once Kind is known.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type TrophyListResponse struct {
	Kind string `json:"kind"`
	Data struct {
		Trophies []Thing `json:"trophies"`
	} `json:"data"`
}

// ErrorResponse is the body the API sends alongside 403s for private,
// suspended or banned accounts.
type ErrorResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Error   int    `json:"error"`
}

type APIAwarding struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
	IconURL string `json:"icon_url"`
}

type APICommentData struct {
	ID              string        `json:"id"`
	Subreddit       string        `json:"subreddit"`
	Body            string        `json:"body"`
	Score           int           `json:"score"`
	CreatedUTC      float64       `json:"created_utc"`
	AuthorFlairText *string       `json:"author_flair_text"`
	AllAwardings    []APIAwarding `json:"all_awardings"`
	Permalink       string        `json:"permalink"`
}

type APIPostData struct {
	ID              string        `json:"id"`
	Subreddit       string        `json:"subreddit"`
	Title           string        `json:"title"`
	Selftext        string        `json:"selftext"`
	Score           int           `json:"score"`
	CreatedUTC      float64       `json:"created_utc"`
	AuthorFlairText *string       `json:"author_flair_text"`
	AllAwardings    []APIAwarding `json:"all_awardings"`
	IsSelf          bool          `json:"is_self"`
	IsVideo         bool          `json:"is_video"`
	PostHint        string        `json:"post_hint"`
}

type APITrophyData struct {
	Name        string  `json:"name"`
	Icon70      string  `json:"icon_70"`
	Description *string `json:"description"`
}
