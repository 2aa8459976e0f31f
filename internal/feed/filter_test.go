package feed

import (
	"math/rand"
	"testing"

	"vidloop-backend/internal/catalog"
	"vidloop-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByDurationThreshold(t *testing.T) {
	videos := []*models.Video{
		{ID: "a", Duration: 61},
		{ID: "b", Duration: 60},
		{ID: "c", Duration: 5},
		{ID: "d", Duration: 959},
	}

	long, short := SplitByDuration(videos)

	require.Len(t, long, 2)
	require.Len(t, short, 2)
	assert.Equal(t, "a", long[0].ID)
	assert.Equal(t, "d", long[1].ID)
	assert.Equal(t, "b", short[0].ID)
	assert.Equal(t, "c", short[1].ID)
}

func TestSplitByDurationPreservesMultiset(t *testing.T) {
	g := catalog.NewGenerator(catalog.DefaultPools(), rand.New(rand.NewSource(17)))
	videos := g.GenerateVideos(200)

	long, short := SplitByDuration(videos)
	assert.Equal(t, len(videos), len(long)+len(short))

	// Recombining the partitions yields exactly the input set; order is
	// preserved within each partition.
	seen := make(map[string]int, len(videos))
	for _, v := range videos {
		seen[v.ID]++
	}
	for _, v := range long {
		seen[v.ID]--
		assert.Greater(t, v.Duration, LongFormThreshold)
	}
	for _, v := range short {
		seen[v.ID]--
		assert.LessOrEqual(t, v.Duration, LongFormThreshold)
	}
	for id, n := range seen {
		assert.Zero(t, n, "video %s dropped or duplicated", id)
	}
}

func TestSplitByDurationEmptyInput(t *testing.T) {
	long, short := SplitByDuration(nil)
	assert.Empty(t, long)
	assert.Empty(t, short)
}

func TestSplitByDurationDoesNotMutateInput(t *testing.T) {
	videos := []*models.Video{
		{ID: "a", Duration: 100},
		{ID: "b", Duration: 10},
	}
	SplitByDuration(videos)

	assert.Equal(t, "a", videos[0].ID)
	assert.Equal(t, "b", videos[1].ID)
}
