package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/redlytics/internal/models"
)

func newTestValkeyStore(t *testing.T) (*ValkeyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	store, err := NewValkeyStore(ValkeyOptions{Address: mr.Addr(), DisableCache: true})
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store, mr
}

func TestValkeyStoreRoundTrip(t *testing.T) {
	store, mr := newTestValkeyStore(t)
	ctx := context.Background()

	flair := "Gopher"
	entry := Entry{
		StoredAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Value: models.RawActivitySet{
			Username: "alice",
			Comments: []models.NormalizedComment{{
				RawComment: models.RawComment{ID: "c1", Subreddit: "golang", Body: "I love this!", Score: 5, AuthorFlairText: &flair},
				Sentiment:  models.Sentiment{Score: 3, Comparative: 1},
			}},
		},
	}

	require.NoError(t, store.Set(ctx, "alice", entry, 5*time.Minute))
	assert.True(t, mr.Exists(VALKEY_KEY_PREFIX+"alice"))
	assert.Equal(t, 5*time.Minute, mr.TTL(VALKEY_KEY_PREFIX+"alice"))

	got, ok, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, entry.StoredAt.Equal(got.StoredAt))
	require.Len(t, got.Value.Comments, 1)
	assert.Equal(t, "Gopher", *got.Value.Comments[0].AuthorFlairText)
	assert.Equal(t, 1.0, got.Value.Comments[0].Sentiment.Comparative)

	require.NoError(t, store.Delete(ctx, "alice"))
	_, ok, err = store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValkeyStoreExpires(t *testing.T) {
	store, mr := newTestValkeyStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "bob", Entry{StoredAt: time.Now(), Value: sampleSet("bob")}, time.Minute))
	mr.FastForward(61 * time.Second)

	_, ok, err := store.Get(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValkeyStoreBacksActivityCache(t *testing.T) {
	store, _ := newTestValkeyStore(t)
	c := New(store, time.Minute)

	calls := 0
	fetch := func(context.Context) (models.RawActivitySet, error) {
		calls++
		return sampleSet("carol"), nil
	}

	_, hit, err := c.GetOrFetch(context.Background(), "Carol", fetch)
	require.NoError(t, err)
	assert.False(t, hit)

	set, hit, err := c.GetOrFetch(context.Background(), "carol", fetch)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "carol", set.Username)
	assert.Equal(t, 1, calls)
}
