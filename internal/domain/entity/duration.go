package entity

// DurationBucket is a coarse classification of video length.
type DurationBucket string

// Duration buckets. Boundaries: short < 300s <= medium <= 1200s < long.
const (
	BucketShort  DurationBucket = "short"
	BucketMedium DurationBucket = "medium"
	BucketLong   DurationBucket = "long"
)

const (
	shortMaxSeconds  = 300  // exclusive upper bound of "short"
	mediumMaxSeconds = 1200 // inclusive upper bound of "medium"
)

// BucketForDuration classifies a duration in seconds into exactly one bucket.
// The buckets form a total, non-overlapping partition of the non-negative integers.
func BucketForDuration(seconds int) DurationBucket {
	switch {
	case seconds < shortMaxSeconds:
		return BucketShort
	case seconds <= mediumMaxSeconds:
		return BucketMedium
	default:
		return BucketLong
	}
}

// ParseDurationBucket returns the bucket named by s, or false if s names no bucket.
func ParseDurationBucket(s string) (DurationBucket, bool) {
	switch DurationBucket(s) {
	case BucketShort, BucketMedium, BucketLong:
		return DurationBucket(s), true
	default:
		return "", false
	}
}
