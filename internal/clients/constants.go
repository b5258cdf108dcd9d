package clients

import "time"

const (
	REDDIT_API_URL   = "https://www.reddit.com"
	REDDIT_OAUTH_URL = "https://oauth.reddit.com"
	REDDIT_AUTH_URL  = "https://www.reddit.com/api/v1/access_token"
	USER_AGENT       = "redlytics/1.0 (+https://github.com/spacesedan/redlytics)"

	DEFAULT_TIMEOUT = 15 * time.Second
	// MAX_BODY_BYTES caps a single listing page; a full page of 100 comments is
	// well under 1MB.
	MAX_BODY_BYTES = 16 << 20
)
