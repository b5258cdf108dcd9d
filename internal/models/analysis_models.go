package models

import "time"

type HourActivity struct {
	Hour     string `json:"hour"`
	Posts    int    `json:"posts"`
	Comments int    `json:"comments"`
}

type DayActivity struct {
	Day      string `json:"day"`
	Posts    int    `json:"posts"`
	Comments int    `json:"comments"`
}

type MonthActivity struct {
	Date         string `json:"date"`
	Posts        int    `json:"posts"`
	Comments     int    `json:"comments"`
	PostKarma    int    `json:"post_karma"`
	CommentKarma int    `json:"comment_karma"`
}

type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type SubredditKarma struct {
	Name  string `json:"name"`
	Karma int    `json:"karma"`
}

type StickinessBucket struct {
	Category   string   `json:"category"`
	Value      int      `json:"value"`
	Subreddits []string `json:"subreddits"`
}

// SubredditSentiment averages the lexicon comparative (AvgScore) and the VADER
// compound value (AvgIntensity) over one subreddit's comments.
type SubredditSentiment struct {
	Name         string  `json:"name"`
	AvgScore     float64 `json:"avg_score"`
	AvgIntensity float64 `json:"avg_intensity"`
	Count        int     `json:"count"`
}

type UserFlair struct {
	Subreddit string `json:"subreddit"`
	Text      string `json:"text"`
}

type WordStat struct {
	Text string `json:"text"`
	// Value is the number of occurrences across all comments.
	Value             int      `json:"value"`
	DocumentFrequency int      `json:"document_frequency"`
	Score             float64  `json:"score"`
	Sentiment         float64  `json:"sentiment"`
	Context           []string `json:"context"`
}

type Vocabulary struct {
	WordCount     int        `json:"word_count"`
	UniqueWords   int        `json:"unique_words"`
	AvgWordLength float64    `json:"avg_word_length"`
	Readability   float64    `json:"readability"`
	TopWords      []WordStat `json:"top_words"`
}

// AnalysisResult is the finished report for one user. It is built once and
// never mutated afterwards.
type AnalysisResult struct {
	Username    string    `json:"username"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalPosts      int     `json:"total_posts"`
	TotalComments   int     `json:"total_comments"`
	PostKarma       int     `json:"post_karma"`
	CommentKarma    int     `json:"comment_karma"`
	TotalKarma      int     `json:"total_karma"`
	AvgPostScore    float64 `json:"avg_post_score"`
	AvgCommentScore float64 `json:"avg_comment_score"`
	DataSpansDays   int     `json:"data_spans_days"`
	MostActiveHour  string  `json:"most_active_hour"`
	MostActiveDay   string  `json:"most_active_day"`

	ActivityByHour   []HourActivity  `json:"activity_by_hour"`
	ActivityByDay    []DayActivity   `json:"activity_by_day"`
	ActivityOverTime []MonthActivity `json:"activity_over_time"`
	// YearlyActivity only holds days with activity inside the trailing year.
	YearlyActivity map[string]int `json:"yearly_activity"`

	TopSubredditsByActivity []NameValue          `json:"top_subreddits_by_activity"`
	TopSubredditsByKarma    []SubredditKarma     `json:"top_subreddits_by_karma"`
	SubredditStickiness     []StickinessBucket   `json:"subreddit_stickiness"`
	SentimentBySubreddit    []SubredditSentiment `json:"sentiment_by_subreddit"`
	TopMentionedSubreddits  []NameValue          `json:"top_mentioned_subreddits"`
	UserFlairs              []UserFlair          `json:"user_flairs"`

	BestComment         *NormalizedComment `json:"best_comment"`
	WorstComment        *NormalizedComment `json:"worst_comment"`
	MostPositiveComment *NormalizedComment `json:"most_positive_comment"`
	MostNegativeComment *NormalizedComment `json:"most_negative_comment"`
	GildedContent       []ActivityItem     `json:"gilded_content"`

	SentimentDistribution     []NameValue `json:"sentiment_distribution"`
	PostTypes                 []NameValue `json:"post_types"`
	CommentLengthDistribution []NameValue `json:"comment_length_distribution"`

	Vocabulary Vocabulary `json:"vocabulary"`

	TopAwards   []Awarding `json:"top_awards"`
	TotalAwards int        `json:"total_awards"`
	Trophies    []Trophy   `json:"trophies"`
}
