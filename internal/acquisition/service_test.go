package acquisition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/spacesedan/redlytics/internal/cache"
	"github.com/spacesedan/redlytics/internal/clients"
	"github.com/spacesedan/redlytics/internal/failure"
)

// fakeReddit serves the three user listings. Handlers receive the page index
// derived from how many times the listing was requested.
type fakeReddit struct {
	mu    sync.Mutex
	hits  map[string]int
	total int

	comments  func(page int, after string) (int, string)
	submitted func(page int, after string) (int, string)
	trophies  func() (int, string)
}

func (f *fakeReddit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimSuffix(r.URL.Path, ".json"), "/")
	listing := parts[len(parts)-1]

	f.mu.Lock()
	page := f.hits[listing]
	f.hits[listing]++
	f.total++
	f.mu.Unlock()

	after := r.URL.Query().Get("after")
	var status int
	var body string
	switch listing {
	case "comments":
		status, body = f.comments(page, after)
	case "submitted":
		status, body = f.submitted(page, after)
	case "trophies":
		status, body = f.trophies()
	default:
		status, body = http.StatusNotFound, `{"error":404}`
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func (f *fakeReddit) Hits(listing string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[listing]
}

func (f *fakeReddit) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

func listing(after string, children ...string) string {
	afterJSON := "null"
	if after != "" {
		afterJSON = fmt.Sprintf("%q", after)
	}
	return fmt.Sprintf(`{"kind":"Listing","data":{"after":%s,"children":[%s]}}`, afterJSON, strings.Join(children, ","))
}

func comment(id, subreddit, body string, score int, created float64) string {
	b, _ := json.Marshal(body)
	return fmt.Sprintf(`{"kind":"t1","data":{"id":%q,"subreddit":%q,"body":%s,"score":%d,"created_utc":%v,"author_flair_text":null,"all_awardings":[],"permalink":"/r/%s/comments/x/%s"}}`,
		id, subreddit, b, score, created, subreddit, id)
}

func post(id, subreddit, title string, score int, created float64) string {
	return fmt.Sprintf(`{"kind":"t3","data":{"id":%q,"subreddit":%q,"title":%q,"selftext":"","score":%d,"created_utc":%v,"is_self":true,"is_video":false,"all_awardings":[{"id":"gid_2","name":"Gold","count":1,"icon_url":"gold.png"}]}}`,
		id, subreddit, title, score, created)
}

func emptyListing(int, string) (int, string) { return http.StatusOK, listing("") }

func noTrophies() (int, string) {
	return http.StatusOK, `{"kind":"TrophyList","data":{"trophies":[]}}`
}

func newFake() *fakeReddit {
	return &fakeReddit{
		hits:      map[string]int{},
		comments:  emptyListing,
		submitted: emptyListing,
		trophies:  noTrophies,
	}
}

func newTestService(t *testing.T, fake *fakeReddit, opts ...Option) *Service {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	chain := clients.NewChain(nil, clients.NewDirectAdapter(5*time.Second))
	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	return NewService(chain, cache.New(cache.NewMemoryStore(), 5*time.Minute), opts...)
}

func TestFetchActivityNormalizes(t *testing.T) {
	fake := newFake()
	fake.comments = func(int, string) (int, string) {
		return http.StatusOK, listing("",
			comment("c1", "golang", "I love this!", 5, 1700000000.0),
			`{"kind":"more","data":{"count":3}}`,
			comment("c2", "rust", "terrible advice", -2, 1700003600.0),
		)
	}
	fake.submitted = func(int, string) (int, string) {
		return http.StatusOK, listing("", post("p1", "golang", "Hello", 42, 1699990000.0))
	}
	fake.trophies = func() (int, string) {
		return http.StatusOK, `{"kind":"TrophyList","data":{"trophies":[{"kind":"t6","data":{"name":"Verified Email","icon_70":"https://img/verified.png","description":null}},{"kind":"t6","data":null}]}}`
	}

	svc := newTestService(t, fake)
	set, err := svc.FetchActivity(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", set.Username)
	require.Len(t, set.Comments, 2)
	require.Len(t, set.Posts, 1)
	require.Len(t, set.Trophies, 1)

	c1 := set.Comments[0]
	assert.Equal(t, "c1", c1.ID)
	assert.Equal(t, int64(1700000000), c1.CreatedUTC)
	assert.Equal(t, 3.0, c1.Sentiment.Score)
	assert.Equal(t, 1.0, c1.Sentiment.Comparative)
	assert.Nil(t, c1.AuthorFlairText)
	assert.Equal(t, -3.0, set.Comments[1].Sentiment.Score)

	p1 := set.Posts[0]
	assert.Equal(t, 42, p1.Score)
	assert.True(t, p1.IsSelf)
	require.Len(t, p1.Awardings, 1)
	assert.Equal(t, "Gold", p1.Awardings[0].Name)

	assert.Equal(t, "Verified Email", set.Trophies[0].Name)
	assert.Equal(t, "https://img/verified.png", set.Trophies[0].IconURL)
	assert.False(t, set.FetchedAt.IsZero())
}

func TestFetchActivityStopsAtPageCap(t *testing.T) {
	fake := newFake()
	fake.comments = func(page int, _ string) (int, string) {
		return http.StatusOK, listing(fmt.Sprintf("t1_next%d", page),
			comment(fmt.Sprintf("c%d", page), "golang", "again", 1, 1700000000.0))
	}

	svc := newTestService(t, fake)
	set, err := svc.FetchActivity(context.Background(), "looper")
	require.NoError(t, err)

	assert.Len(t, set.Comments, 10)
	assert.Equal(t, 10, fake.Hits("comments"))
}

func TestFetchActivityHonoursCustomPaging(t *testing.T) {
	fake := newFake()
	var seenAfter []string
	var mu sync.Mutex
	fake.submitted = func(page int, after string) (int, string) {
		mu.Lock()
		seenAfter = append(seenAfter, after)
		mu.Unlock()
		return http.StatusOK, listing(fmt.Sprintf("t3_%d", page), post(fmt.Sprintf("p%d", page), "go", "t", 1, 1700000000.0))
	}

	svc := newTestService(t, fake, WithPaging(3, 25))
	set, err := svc.FetchActivity(context.Background(), "pager")
	require.NoError(t, err)

	assert.Len(t, set.Posts, 3)
	assert.Equal(t, []string{"", "t3_0", "t3_1"}, seenAfter)
}

func TestFetchActivityFirstPageNotFound(t *testing.T) {
	fake := newFake()
	fake.comments = func(int, string) (int, string) {
		return http.StatusNotFound, `{"message":"Not Found","error":404}`
	}

	svc := newTestService(t, fake)
	_, err := svc.FetchActivity(context.Background(), "ghost")
	require.Error(t, err)

	var fe *failure.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, failure.NotFound, fe.Kind)
	assert.Equal(t, "ghost", fe.Username)
	assert.Equal(t, 404, fe.Status)
}

func TestFetchActivityPrivateProfile(t *testing.T) {
	fake := newFake()
	fake.trophies = func() (int, string) {
		return http.StatusForbidden, `{"reason":"private","message":"Forbidden","error":403}`
	}

	svc := newTestService(t, fake)
	_, err := svc.FetchActivity(context.Background(), "hidden")
	assert.Equal(t, failure.Forbidden, failure.KindOf(err))
}

func TestFetchActivityKeepsPartialPages(t *testing.T) {
	fake := newFake()
	fake.comments = func(page int, _ string) (int, string) {
		if page >= 2 {
			return http.StatusTooManyRequests, `{"message":"Too Many Requests","error":429}`
		}
		return http.StatusOK, listing(fmt.Sprintf("t1_%d", page),
			comment(fmt.Sprintf("c%d", page), "golang", "fine", 1, 1700000000.0))
	}

	svc := newTestService(t, fake)
	set, err := svc.FetchActivity(context.Background(), "partial")
	require.NoError(t, err)

	assert.Len(t, set.Comments, 2)
	assert.Equal(t, 3, fake.Hits("comments"))
}

func TestFetchActivitySkipsMalformedItemOnLaterPage(t *testing.T) {
	fake := newFake()
	fake.comments = func(page int, _ string) (int, string) {
		if page == 0 {
			return http.StatusOK, listing("t1_0", comment("c0", "golang", "I love this!", 3, 1700000000.0))
		}
		return http.StatusOK, listing("",
			`{"kind":"t1","data":{"id":"c1","subreddit":"golang","body":"x","score":"hidden","created_utc":1700000100}}`)
	}

	svc := newTestService(t, fake)
	set, err := svc.FetchActivity(context.Background(), "alice")
	require.NoError(t, err)

	require.Len(t, set.Comments, 1)
	assert.Equal(t, "c0", set.Comments[0].ID)
	assert.Equal(t, 2, fake.Hits("comments"))
}

func TestFetchActivitySkipsMalformedItemOnFirstPage(t *testing.T) {
	fake := newFake()
	fake.submitted = func(int, string) (int, string) {
		return http.StatusOK, listing("",
			`{"kind":"t3","data":{"id":"p0","subreddit":"go","title":["not","a","string"]}}`,
			post("p1", "go", "Hello", 7, 1700000000.0))
	}
	fake.trophies = func() (int, string) {
		return http.StatusOK, `{"kind":"TrophyList","data":{"trophies":[{"kind":"t6","data":{"name":42}},{"kind":"t6","data":{"name":"Verified Email"}}]}}`
	}

	svc := newTestService(t, fake)
	set, err := svc.FetchActivity(context.Background(), "bob")
	require.NoError(t, err)

	require.Len(t, set.Posts, 1)
	assert.Equal(t, "p1", set.Posts[0].ID)
	require.Len(t, set.Trophies, 1)
	assert.Equal(t, "Verified Email", set.Trophies[0].Name)
}

func TestFetchActivityServesCacheWithinTTL(t *testing.T) {
	fake := newFake()
	fake.comments = func(int, string) (int, string) {
		return http.StatusOK, listing("", comment("c1", "golang", "hi", 1, 1700000000.0))
	}

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	srv := httptest.NewServer(fake)
	defer srv.Close()
	chain := clients.NewChain(nil, clients.NewDirectAdapter(5*time.Second))
	svc := NewService(chain, cache.New(cache.NewMemoryStore(), 5*time.Minute, cache.WithClock(clock)), WithBaseURL(srv.URL))

	first, err := svc.FetchActivity(context.Background(), "Alice")
	require.NoError(t, err)
	calls := fake.Total()
	assert.Equal(t, 3, calls)

	now = now.Add(3 * time.Minute)
	second, err := svc.FetchActivity(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, calls, fake.Total())
	assert.Equal(t, first.Comments, second.Comments)

	now = now.Add(3 * time.Minute)
	_, err = svc.FetchActivity(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2*calls, fake.Total())
}

func TestFetchActivityDoesNotLeakGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	fake := newFake()
	fake.trophies = func() (int, string) {
		return http.StatusNotFound, `{"error":404}`
	}
	fake.comments = func(page int, _ string) (int, string) {
		time.Sleep(10 * time.Millisecond)
		return http.StatusOK, listing(fmt.Sprintf("t1_%d", page), comment("c", "go", "x", 1, 1700000000.0))
	}

	srv := httptest.NewServer(fake)
	adapter := clients.NewDirectAdapter(5 * time.Second)
	svc := NewService(clients.NewChain(nil, adapter), nil, WithBaseURL(srv.URL))

	_, err := svc.FetchActivity(context.Background(), "leaky")
	assert.Equal(t, failure.NotFound, failure.KindOf(err))

	srv.CloseClientConnections()
	srv.Close()
	http.DefaultTransport.(*http.Transport).CloseIdleConnections()
}
