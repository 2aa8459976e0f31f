package models

// Category classifies a video and selects its caption template pool.
type Category string

const (
	CategoryFunny   Category = "funny"
	CategoryRomance Category = "romance"
	CategoryLove    Category = "love"
	CategorySad     Category = "sad"
	CategoryCartoon Category = "cartoon"
	CategoryTech    Category = "tech"
)

// Categories lists every video category in generation order.
var Categories = []Category{
	CategoryFunny,
	CategoryRomance,
	CategoryLove,
	CategorySad,
	CategoryCartoon,
	CategoryTech,
}

// User represents a creator profile. Users are immutable once generated.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	Followers  int    `json:"followers"`
	Following  int    `json:"following"`
	TotalViews int    `json:"total_views"`
	Uploads    int    `json:"uploads"`
	IsVerified bool   `json:"is_verified"`
}

// Comment is a single comment on a video. Timestamp is a display string
// ("2h ago"), matching what the client renders directly.
type Comment struct {
	ID        string `json:"id"`
	User      *User  `json:"user"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Video is a feed entry. Duration is in whole seconds; entries longer than
// 60s belong to the long-form feed, the rest to shorts.
type Video struct {
	ID           string    `json:"id"`
	User         *User     `json:"user"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Caption      string    `json:"caption"`
	AudioName    string    `json:"audio_name"`
	Likes        int       `json:"likes"`
	Comments     []Comment `json:"comments"`
	Shares       int       `json:"shares"`
	Category     Category  `json:"category"`
	Duration     int       `json:"duration"`
	ViewCount    int       `json:"view_count"`
	UploadedAt   string    `json:"uploaded_at"`
}

// Story is a time-limited image post shown in the story viewer.
type Story struct {
	ID       string `json:"id"`
	User     *User  `json:"user"`
	ImageURL string `json:"image_url"`
	Viewed   bool   `json:"viewed"`
}

// MessageKind distinguishes text messages from voice notes.
type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageVoice MessageKind = "voice"
)

// Message is a single direct message. Voice messages carry an audio URL and
// a duration in seconds; text messages leave both empty.
type Message struct {
	ID           string      `json:"id"`
	Kind         MessageKind `json:"kind"`
	Text         string      `json:"text,omitempty"`
	AudioURL     string      `json:"audio_url,omitempty"`
	AudioSeconds int         `json:"audio_seconds,omitempty"`
	Sender       string      `json:"sender"` // "me" or "them"
	Timestamp    string      `json:"timestamp"`
}

// Chat is a direct-message thread with one counterpart user.
// Invariant: UnreadCount >= 0.
type Chat struct {
	ID              string    `json:"id"`
	User            *User     `json:"user"`
	Messages        []Message `json:"messages"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime string    `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}

// Song is an entry in the music library. Duration is a display string
// formatted "M:SS".
type Song struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	CoverArtURL string `json:"cover_art_url"`
	Duration    string `json:"duration"`
}

// Effect is a camera filter available on the upload screen.
type Effect struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPremium    bool   `json:"is_premium"`
}

// NotificationType enumerates the activity feed entry kinds.
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
	NotificationMention NotificationType = "mention"
)

// Notification is an activity feed entry about an actor's interaction.
type Notification struct {
	ID           string           `json:"id"`
	User         *User            `json:"user"`
	Type         NotificationType `json:"type"`
	Timestamp    string           `json:"timestamp"`
	PostImageURL string           `json:"post_image_url,omitempty"`
	Read         bool             `json:"read"`
}
