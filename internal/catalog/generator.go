package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"vidloop-backend/internal/models"

	"github.com/google/uuid"
)

const (
	// longFormOdds is the probability that a generated video gets a
	// long-form duration. Consumers rely on the resulting ~70/30 split
	// between the feed and shorts surfaces, so this is a fixed constant.
	longFormOdds = 0.7

	longDurationMin  = 120
	longDurationMax  = 960
	shortDurationMin = 5
	shortDurationMax = 60

	maxLikes  = 250000
	maxShares = 2500
	maxViews  = 1_000_000
)

// Generator synthesizes randomized catalogs from the fixed template pools.
// The random source is injected so tests can seed it; a Generator is not
// safe for concurrent use because *rand.Rand is not.
type Generator struct {
	pools *Pools
	rng   *rand.Rand
}

// NewGenerator creates a generator over the given pools and random source.
func NewGenerator(pools *Pools, rng *rand.Rand) *Generator {
	return &Generator{pools: pools, rng: rng}
}

// PinnedVideos returns the fixed demo videos that head every generated
// feed: a welcome video and two showcase videos.
func (g *Generator) PinnedVideos() []*models.Video {
	return []*models.Video{
		{
			ID:           "video_pinned_welcome",
			User:         g.pools.MainUser,
			VideoURL:     "https://test-videos.co.uk/vids/bigbuckbunny/mp4/h264/360/Big_Buck_Bunny_360_10s_1MB.mp4",
			ThumbnailURL: "https://placehold.co/400x700.png",
			Caption:      "Welcome to Vidloop! 🔥 #welcome #coding",
			AudioName:    g.pools.AudioTracks[0],
			Likes:        12300,
			Comments:     []models.Comment{g.pools.SampleComments[0], g.pools.SampleComments[1]},
			Shares:       123,
			Category:     models.CategoryTech,
			Duration:     42,
			ViewCount:    152000,
			UploadedAt:   "today",
		},
		{
			ID:           "video_pinned_dance",
			User:         g.pools.Users[2],
			VideoURL:     "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
			ThumbnailURL: "https://placehold.co/400x700.png",
			Caption:      "New dance challenge! Can you do it? 💃 #dance #challenge",
			AudioName:    g.pools.AudioTracks[2],
			Likes:        45600,
			Comments:     append([]models.Comment(nil), g.pools.SampleComments...),
			Shares:       567,
			Category:     models.CategoryFunny,
			Duration:     58,
			ViewCount:    890000,
			UploadedAt:   "1d ago",
		},
		{
			ID:           "video_pinned_dragon",
			User:         g.pools.Users[4],
			VideoURL:     "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			ThumbnailURL: "https://placehold.co/400x700.png",
			Caption:      "A tale of a lonely dragon. #sad #animation",
			AudioName:    g.pools.AudioTracks[4],
			Likes:        98700,
			Comments:     []models.Comment{g.pools.SampleComments[1], g.pools.SampleComments[2]},
			Shares:       987,
			Category:     models.CategorySad,
			Duration:     653,
			ViewCount:    410000,
			UploadedAt:   "3d ago",
		},
	}
}

// GenerateVideos produces the pinned demo videos followed by count randomly
// generated ones. Category and owner rotate round-robin so the sequence is
// deterministic given count; caption, media URL, duration and engagement
// counts come from the random source. Adjacent entries never share a media
// URL while more than one URL is in the pool.
func (g *Generator) GenerateVideos(count int) []*models.Video {
	pinned := g.PinnedVideos()
	videos := make([]*models.Video, 0, len(pinned)+count)
	lastURL := ""
	for _, v := range pinned {
		videos = append(videos, v)
		lastURL = v.VideoURL
	}

	for i := 0; i < count; i++ {
		category := models.Categories[i%len(models.Categories)]
		user := g.pools.Users[i%len(g.pools.Users)]
		captions := g.pools.Captions[category]
		caption := captions[g.rng.Intn(len(captions))]

		videoURL := g.pools.VideoURLs[g.rng.Intn(len(g.pools.VideoURLs))]
		for videoURL == lastURL && len(g.pools.VideoURLs) > 1 {
			videoURL = g.pools.VideoURLs[g.rng.Intn(len(g.pools.VideoURLs))]
		}
		lastURL = videoURL

		videos = append(videos, &models.Video{
			ID:           fmt.Sprintf("video_%s", uuid.NewString()),
			User:         user,
			VideoURL:     videoURL,
			ThumbnailURL: fmt.Sprintf("https://placehold.co/400x700.png?text=Vid%d", i+1),
			Caption:      caption,
			AudioName:    g.pools.AudioTracks[g.rng.Intn(len(g.pools.AudioTracks))],
			Likes:        g.rng.Intn(maxLikes),
			Comments:     g.sampleCommentRun(),
			Shares:       g.rng.Intn(maxShares),
			Category:     category,
			Duration:     g.randomDuration(),
			ViewCount:    g.rng.Intn(maxViews),
			UploadedAt:   displayDaysAgo(g.rng.Intn(7)),
		})
	}
	return videos
}

// randomDuration draws a long-form duration with probability longFormOdds,
// otherwise a short-form one.
func (g *Generator) randomDuration() int {
	if g.rng.Float64() < longFormOdds {
		return longDurationMin + g.rng.Intn(longDurationMax-longDurationMin)
	}
	return shortDurationMin + g.rng.Intn(shortDurationMax-shortDurationMin)
}

// sampleCommentRun returns no comments half the time, otherwise a random
// length prefix of the sample comment pool.
func (g *Generator) sampleCommentRun() []models.Comment {
	if g.rng.Float64() < 0.5 {
		return nil
	}
	n := 1 + g.rng.Intn(len(g.pools.SampleComments))
	run := make([]models.Comment, n)
	copy(run, g.pools.SampleComments[:n])
	return run
}

// Songs builds the music library by cycling the title and artist pools n
// times over, disambiguating repeated titles with a " #k" suffix so ids and
// display titles stay unique.
func (g *Generator) Songs(n int) []*models.Song {
	songs := make([]*models.Song, 0, n)
	for i := 0; i < n; i++ {
		title := g.pools.SongTitles[i%len(g.pools.SongTitles)]
		artist := g.pools.Artists[i%len(g.pools.Artists)]
		minutes := 2 + g.rng.Intn(3)
		seconds := g.rng.Intn(60)
		songs = append(songs, &models.Song{
			ID:          fmt.Sprintf("song_%d_%s", i, slugify(title)),
			Title:       fmt.Sprintf("%s #%d", title, i/len(g.pools.SongTitles)+1),
			Artist:      artist,
			CoverArtURL: fmt.Sprintf("https://placehold.co/100x100.png?text=%s", initials(title)),
			Duration:    fmt.Sprintf("%d:%02d", minutes, seconds),
		})
	}
	return songs
}

// Effects builds the effect catalog by cycling the name pool, randomizing
// the premium flag per entry.
func (g *Generator) Effects(n int) []*models.Effect {
	effects := make([]*models.Effect, 0, n)
	for i := 0; i < n; i++ {
		name := g.pools.EffectNames[i%len(g.pools.EffectNames)]
		effects = append(effects, &models.Effect{
			ID:           fmt.Sprintf("%s_%d", slugify(name), i),
			Name:         name,
			ThumbnailURL: fmt.Sprintf("https://placehold.co/100x100.png?text=%s", name[:1]),
			IsPremium:    g.rng.Intn(2) == 0,
		})
	}
	return effects
}

// Stories produces one story per pool user, in user order. The first three
// users' stories start unviewed.
func (g *Generator) Stories() []*models.Story {
	stories := make([]*models.Story, 0, len(g.pools.Users))
	for i, user := range g.pools.Users {
		stories = append(stories, &models.Story{
			ID:       fmt.Sprintf("story%d_%s", i, user.ID),
			User:     user,
			ImageURL: fmt.Sprintf("https://placehold.co/300x500.png?text=Story%d", i+1),
			Viewed:   i > 2,
		})
	}
	return stories
}

// Notifications produces n activity entries. Actors cycle over the non-main
// users and types rotate; entries past the first two arrive already read.
func (g *Generator) Notifications(n int) []*models.Notification {
	types := []models.NotificationType{
		models.NotificationLike,
		models.NotificationComment,
		models.NotificationFollow,
		models.NotificationMention,
	}
	timestamps := []string{"2m ago", "1h ago", "3h ago", "1d ago", "2d ago"}
	actors := g.pools.Users[1:]

	notifications := make([]*models.Notification, 0, n)
	for i := 0; i < n; i++ {
		typ := types[i%len(types)]
		notif := &models.Notification{
			ID:        fmt.Sprintf("notif%d", i+1),
			User:      actors[i%len(actors)],
			Type:      typ,
			Timestamp: timestamps[i%len(timestamps)],
			Read:      i >= 2,
		}
		if typ != models.NotificationFollow {
			notif.PostImageURL = "https://placehold.co/50x50.png?text=Post"
		}
		notifications = append(notifications, notif)
	}
	return notifications
}

// Chats returns the session's starting direct-message threads. One thread
// carries unread messages and one ends in a voice note.
func (g *Generator) Chats() []*models.Chat {
	return []*models.Chat{
		{
			ID:   "chat1",
			User: g.pools.Users[1],
			Messages: []models.Message{
				{ID: "m1", Kind: models.MessageText, Text: "Hey, love your latest video!", Sender: "them", Timestamp: "10:30 AM"},
				{ID: "m2", Kind: models.MessageText, Text: "Thanks so much! Glad you liked it.", Sender: "me", Timestamp: "10:31 AM"},
			},
			LastMessage:     "Thanks so much! Glad you liked it.",
			LastMessageTime: "10:31 AM",
			UnreadCount:     0,
		},
		{
			ID:   "chat2",
			User: g.pools.Users[3],
			Messages: []models.Message{
				{ID: "m3", Kind: models.MessageText, Text: "Got a collab idea for you!", Sender: "them", Timestamp: "Yesterday"},
				{ID: "m4", Kind: models.MessageVoice, AudioURL: "https://cdn.vidloop.example/voice/m4.ogg", AudioSeconds: 8, Sender: "them", Timestamp: "Yesterday"},
			},
			LastMessage:     "Voice message",
			LastMessageTime: "Yesterday",
			UnreadCount:     2,
		},
		{
			ID:   "chat3",
			User: g.pools.Users[4],
			Messages: []models.Message{
				{ID: "m5", Kind: models.MessageText, Text: "That art piece was amazing", Sender: "them", Timestamp: "2 days ago"},
			},
			LastMessage:     "That art piece was amazing",
			LastMessageTime: "2d",
			UnreadCount:     0,
		},
	}
}

func displayDaysAgo(days int) string {
	if days == 0 {
		return "today"
	}
	return fmt.Sprintf("%dd ago", days)
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// initials builds the one- or two-letter cover art label from a title.
func initials(title string) string {
	words := strings.Fields(title)
	if len(words) >= 2 {
		return words[0][:1] + words[1][:1]
	}
	return title[:1]
}
