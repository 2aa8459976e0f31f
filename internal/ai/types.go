package ai

import "fmt"

// Mood is a detected viewer mood.
type Mood string

const (
	MoodSad      Mood = "sad"
	MoodHappy    Mood = "happy"
	MoodRomantic Mood = "romantic"
	MoodAngry    Mood = "angry"
	MoodNeutral  Mood = "neutral"
)

// Valid reports whether the mood is one of the accepted values.
func (m Mood) Valid() bool {
	switch m {
	case MoodSad, MoodHappy, MoodRomantic, MoodAngry, MoodNeutral:
		return true
	}
	return false
}

// ContentType identifies what kind of content is being moderated.
type ContentType string

const (
	ContentVideo   ContentType = "video"
	ContentComment ContentType = "comment"
)

// Valid reports whether the content type is one of the accepted values.
func (t ContentType) Valid() bool {
	return t == ContentVideo || t == ContentComment
}

// ModerateContentInput asks whether a piece of content violates the
// community guidelines.
type ModerateContentInput struct {
	Content             string      `json:"content"`
	ContentType         ContentType `json:"contentType"`
	CommunityGuidelines string      `json:"communityGuidelines"`
}

// ModerateContentOutput is the moderation verdict.
type ModerateContentOutput struct {
	Flagged   bool   `json:"flagged"`
	Reason    string `json:"reason"`
	Sentiment string `json:"sentiment"`
}

// GenerateCaptionsInput asks for caption and tag suggestions for a video.
type GenerateCaptionsInput struct {
	VideoDescription string `json:"videoDescription"`
}

// GenerateCaptionsOutput carries the suggested captions and tags.
type GenerateCaptionsOutput struct {
	Captions []string `json:"captions"`
	Tags     []string `json:"tags"`
}

// DetectFraudInput describes one view for fraud scoring.
type DetectFraudInput struct {
	VideoID   string  `json:"videoId"`
	UserID    string  `json:"userId"`
	WatchTime float64 `json:"watchTime"`
	Likes     int     `json:"likes"`
	Comments  int     `json:"comments"`
	SkipRate  float64 `json:"skipRate"`
	Mood      Mood    `json:"mood"`
}

// DetectFraudOutput is the fraud verdict with a score in [0, 1].
type DetectFraudOutput struct {
	IsFraudulent bool    `json:"isFraudulent"`
	FraudScore   float64 `json:"fraudScore"`
	Reason       string  `json:"reason"`
}

// SuggestBugFixInput carries error logs and surrounding context for a fix
// suggestion.
type SuggestBugFixInput struct {
	ErrorLogs   string `json:"errorLogs"`
	CodeSnippet string `json:"codeSnippet,omitempty"`
	Language    string `json:"language"`
}

// SuggestBugFixOutput is the suggested fix with a confidence in [0, 1].
type SuggestBugFixOutput struct {
	SuggestedFix    string  `json:"suggestedFix"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
	Explanation     string  `json:"explanation"`
}

// RecommendVideosInput asks for recommendations matching the viewer's mood.
type RecommendVideosInput struct {
	UserViewingHistory string `json:"userViewingHistory"`
	DetectedMood       Mood   `json:"detectedMood"`
	VideoCategories    string `json:"videoCategories"`
}

// RecommendVideosOutput carries recommended video titles and the reasoning
// behind them.
type RecommendVideosOutput struct {
	RecommendedVideos []string `json:"recommendedVideos"`
	Reasoning         string   `json:"reasoning"`
}

// ProviderError is a failure reported by the generative-model provider.
// It is surfaced unchanged so callers can distinguish provider failures
// from transport or decoding errors.
type ProviderError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
}
