package feed

import "vidloop-backend/internal/models"

// LongFormThreshold is the duration in seconds above which a video belongs
// to the long-form feed rather than shorts.
const LongFormThreshold = 60

// SplitByDuration partitions videos into long-form (duration > 60s) and
// short-form subsequences. Relative order is preserved within each
// partition and the input is not mutated; together the two outputs contain
// every input video exactly once.
func SplitByDuration(videos []*models.Video) (long, short []*models.Video) {
	long = make([]*models.Video, 0, len(videos))
	short = make([]*models.Video, 0, len(videos))
	for _, v := range videos {
		if v.Duration > LongFormThreshold {
			long = append(long, v)
		} else {
			short = append(short, v)
		}
	}
	return long, short
}
