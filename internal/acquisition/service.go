// Package acquisition assembles a user's raw activity set from the listing API.
package acquisition

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spacesedan/redlytics/config"
	"github.com/spacesedan/redlytics/internal/cache"
	"github.com/spacesedan/redlytics/internal/clients"
	"github.com/spacesedan/redlytics/internal/failure"
	"github.com/spacesedan/redlytics/internal/models"
)

const (
	LISTING_COMMENTS  = "comments"
	LISTING_SUBMITTED = "submitted"
)

// JSONFetcher is satisfied by clients.Chain.
type JSONFetcher interface {
	GetJSON(ctx context.Context, upstreamURL string, out any) error
}

type Service struct {
	fetcher  JSONFetcher
	cache    *cache.ActivityCache
	baseURL  string
	maxPages int
	pageSize int
	now      func() time.Time
}

type Option func(*Service)

func WithBaseURL(baseURL string) Option {
	return func(s *Service) { s.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithPaging(maxPages, pageSize int) Option {
	return func(s *Service) {
		if maxPages > 0 {
			s.maxPages = maxPages
		}
		if pageSize > 0 {
			s.pageSize = pageSize
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(fetcher JSONFetcher, activityCache *cache.ActivityCache, opts ...Option) *Service {
	s := &Service{
		fetcher:  fetcher,
		cache:    activityCache,
		baseURL:  clients.REDDIT_API_URL,
		maxPages: config.DEFAULT_MAX_PAGES,
		pageSize: config.DEFAULT_PAGE_SIZE,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.New(cache.NewMemoryStore(), config.DEFAULT_CACHE_TTL)
	}
	return s
}

// FetchActivity returns the user's posts, comments and trophies, from the
// cache when a fresh copy exists. Errors are *failure.Error values tagged with
// the username.
func (s *Service) FetchActivity(ctx context.Context, username string) (models.RawActivitySet, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.RawActivitySet{}, failure.Newf(failure.NotFound, "empty username")
	}

	set, hit, err := s.cache.GetOrFetch(ctx, username, func(ctx context.Context) (models.RawActivitySet, error) {
		return s.fetchFresh(ctx, username)
	})
	if err != nil {
		return models.RawActivitySet{}, failure.WithUsername(err, username)
	}
	if hit {
		slog.Info("[Acquisition] Serving cached activity",
			slog.String("username", username))
	}
	return set, nil
}

func (s *Service) fetchFresh(ctx context.Context, username string) (models.RawActivitySet, error) {
	start := s.now()
	set := models.RawActivitySet{Username: username}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		set.Trophies, err = s.fetchTrophies(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		set.Comments, err = fetchAllPages(gctx, s, username, LISTING_COMMENTS, decodeComments)
		return err
	})
	g.Go(func() error {
		var err error
		set.Posts, err = fetchAllPages(gctx, s, username, LISTING_SUBMITTED, decodePosts)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.RawActivitySet{}, err
	}
	set.FetchedAt = s.now().UTC()

	slog.Info("[Acquisition] Fetched activity",
		slog.String("username", username),
		slog.Int("posts", len(set.Posts)),
		slog.Int("comments", len(set.Comments)),
		slog.Int("trophies", len(set.Trophies)),
		slog.Duration("elapsed", s.now().Sub(start)))
	return set, nil
}

func (s *Service) userURL(username, resource string) string {
	return fmt.Sprintf("%s/user/%s/%s.json", s.baseURL, url.PathEscape(username), resource)
}

func (s *Service) fetchTrophies(ctx context.Context, username string) ([]models.Trophy, error) {
	var resp models.TrophyListResponse
	if err := s.fetcher.GetJSON(ctx, s.userURL(username, "trophies")+"?raw_json=1", &resp); err != nil {
		return nil, fmt.Errorf("fetch trophies: %w", err)
	}
	return decodeTrophies(resp.Data.Trophies, skipLogger(username, "trophies", 0)), nil
}

// skipLogger reports children dropped by a decoder.
func skipLogger(username, listing string, page int) skipFunc {
	return func(index int, err error) {
		slog.Warn("[Acquisition] Skipping malformed item",
			slog.String("username", username),
			slog.String("listing", listing),
			slog.Int("page", page),
			slog.Int("index", index),
			slog.String("error", err.Error()))
	}
}

func (s *Service) pageURL(username, listing, after string) string {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(s.pageSize))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}
	return s.userURL(username, listing) + "?" + q.Encode()
}

// fetchAllPages walks a listing with the after cursor and decodes each page as
// it arrives. A failure on the first page is returned; a failure on any later
// page ends the walk and keeps what was collected so far. Items that do not
// decode are logged and skipped on every page.
func fetchAllPages[T any](ctx context.Context, s *Service, username, listing string, decode func([]models.Thing, skipFunc) []T) ([]T, error) {
	var (
		items []T
		after string
	)

	for page := 0; page < s.maxPages; page++ {
		var resp models.ListingResponse
		err := s.fetcher.GetJSON(ctx, s.pageURL(username, listing, after), &resp)
		if err != nil {
			if page == 0 {
				return nil, fmt.Errorf("fetch %s: %w", listing, err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			slog.Warn("[Acquisition] Stopping pagination after error",
				slog.String("username", username),
				slog.String("listing", listing),
				slog.Int("page", page),
				slog.String("error", err.Error()))
			break
		}

		if len(resp.Data.Children) == 0 {
			break
		}
		items = append(items, decode(resp.Data.Children, skipLogger(username, listing, page))...)

		after = resp.Data.NextCursor()
		if after == "" {
			break
		}
		if page == s.maxPages-1 {
			slog.Debug("[Acquisition] Page cap reached",
				slog.String("listing", listing),
				slog.Int("pages", s.maxPages))
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
