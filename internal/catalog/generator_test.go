package catalog

import (
	"math/rand"
	"testing"

	"vidloop-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(DefaultPools(), rand.New(rand.NewSource(seed)))
}

func TestGenerateVideosCount(t *testing.T) {
	g := newTestGenerator(1)
	pinned := len(g.PinnedVideos())

	for _, count := range []int{0, 1, 20, 30} {
		videos := g.GenerateVideos(count)
		assert.Len(t, videos, count+pinned)
	}
}

func TestGenerateVideosZeroCountReturnsOnlyPinned(t *testing.T) {
	g := newTestGenerator(1)
	videos := g.GenerateVideos(0)

	require.Len(t, videos, 3)
	assert.Equal(t, "video_pinned_welcome", videos[0].ID)
	assert.Equal(t, "user_main", videos[0].User.ID)
}

func TestGenerateVideosRoundRobinCategoryAndOwner(t *testing.T) {
	pools := DefaultPools()
	g := NewGenerator(pools, rand.New(rand.NewSource(7)))
	videos := g.GenerateVideos(12)[3:]

	for i, v := range videos {
		assert.Equal(t, models.Categories[i%len(models.Categories)], v.Category)
		assert.Equal(t, pools.Users[i%len(pools.Users)].ID, v.User.ID)
	}
}

func TestGenerateVideosDurationBounds(t *testing.T) {
	g := newTestGenerator(42)
	for _, v := range g.GenerateVideos(1000) {
		assert.GreaterOrEqual(t, v.Duration, 5)
		assert.Less(t, v.Duration, 960)
	}
}

func TestGenerateVideosLongShortSplitRatio(t *testing.T) {
	g := newTestGenerator(42)
	videos := g.GenerateVideos(10000)[3:]

	long := 0
	for _, v := range videos {
		if v.Duration > 60 {
			long++
		}
	}
	ratio := float64(long) / float64(len(videos))
	assert.InDelta(t, 0.7, ratio, 0.02)
}

func TestGenerateVideosNoAdjacentURLRepeat(t *testing.T) {
	g := newTestGenerator(3)
	videos := g.GenerateVideos(500)

	for i := 1; i < len(videos); i++ {
		assert.NotEqual(t, videos[i-1].VideoURL, videos[i].VideoURL,
			"videos %d and %d share a media URL", i-1, i)
	}
}

func TestGenerateVideosCaptionsMatchCategory(t *testing.T) {
	pools := DefaultPools()
	g := NewGenerator(pools, rand.New(rand.NewSource(9)))

	for _, v := range g.GenerateVideos(60)[3:] {
		assert.Contains(t, pools.Captions[v.Category], v.Caption)
	}
}

func TestGenerateVideosEngagementBounds(t *testing.T) {
	g := newTestGenerator(11)
	for _, v := range g.GenerateVideos(500)[3:] {
		assert.Less(t, v.Likes, 250000)
		assert.Less(t, v.Shares, 2500)
		assert.Less(t, v.ViewCount, 1_000_000)
		assert.LessOrEqual(t, len(v.Comments), 4)
	}
}

func TestSongsCycleWithSuffixDisambiguator(t *testing.T) {
	g := newTestGenerator(5)
	songs := g.Songs(100)

	require.Len(t, songs, 100)
	assert.Equal(t, "Cosmic Drift #1", songs[0].Title)
	assert.Equal(t, "Cosmic Drift #2", songs[27].Title)
	assert.Equal(t, "Neon Pulse #2", songs[28].Title)

	seen := make(map[string]bool)
	for _, s := range songs {
		assert.False(t, seen[s.ID], "duplicate song id %s", s.ID)
		seen[s.ID] = true
		assert.Regexp(t, `^[2-4]:[0-5][0-9]$`, s.Duration)
	}
}

func TestEffectsCycleNamePool(t *testing.T) {
	g := newTestGenerator(5)
	effects := g.Effects(200)

	require.Len(t, effects, 200)
	assert.Equal(t, "Cyberpunk", effects[0].Name)
	assert.Equal(t, "cyberpunk_0", effects[0].ID)
	// Name pool has 96 entries, so entry 96 cycles back.
	assert.Equal(t, "Cyberpunk", effects[96].Name)
	assert.Equal(t, "cyberpunk_96", effects[96].ID)

	premium := 0
	for _, e := range effects {
		if e.IsPremium {
			premium++
		}
	}
	assert.Greater(t, premium, 0)
	assert.Less(t, premium, len(effects))
}

func TestStoriesOnePerUser(t *testing.T) {
	pools := DefaultPools()
	g := NewGenerator(pools, rand.New(rand.NewSource(5)))
	stories := g.Stories()

	require.Len(t, stories, len(pools.Users))
	for i, s := range stories {
		assert.Equal(t, pools.Users[i].ID, s.User.ID)
		assert.Equal(t, i > 2, s.Viewed)
	}
}

func TestNotificationsCycleTypesAndActors(t *testing.T) {
	g := newTestGenerator(5)
	notifications := g.Notifications(5)

	require.Len(t, notifications, 5)
	assert.Equal(t, models.NotificationLike, notifications[0].Type)
	assert.Equal(t, models.NotificationComment, notifications[1].Type)
	assert.Equal(t, models.NotificationFollow, notifications[2].Type)
	assert.Equal(t, models.NotificationMention, notifications[3].Type)

	assert.False(t, notifications[0].Read)
	assert.False(t, notifications[1].Read)
	assert.True(t, notifications[2].Read)

	// Follows carry no post image; everything else does.
	assert.Empty(t, notifications[2].PostImageURL)
	assert.NotEmpty(t, notifications[0].PostImageURL)

	for _, n := range notifications {
		assert.NotEqual(t, "user_main", n.User.ID)
	}
}

func TestChatsFixtures(t *testing.T) {
	g := newTestGenerator(5)
	chats := g.Chats()

	require.Len(t, chats, 3)
	assert.Equal(t, 2, chats[1].UnreadCount)

	voice := chats[1].Messages[1]
	assert.Equal(t, models.MessageVoice, voice.Kind)
	assert.NotEmpty(t, voice.AudioURL)
	assert.Greater(t, voice.AudioSeconds, 0)

	for _, c := range chats {
		assert.GreaterOrEqual(t, c.UnreadCount, 0)
		assert.NotEmpty(t, c.LastMessage)
	}
}
