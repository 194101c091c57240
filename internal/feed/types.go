package feed

import "time"

// User is a member of the feed.
//
// Followers and Following are the two redundant sides of the directed
// follow relation: u.ID appearing in other.Followers is equivalent to
// other.ID appearing in u.Following. Every mutating operation keeps the
// two sides symmetric. Neither set ever contains the user's own id.
//
// A user's post count is not stored; it is derived from the post
// collection via Store.PostCount.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Avatar      string   `json:"avatar"`
	Bio         string   `json:"bio"`
	Followers   []string `json:"followers"`
	Following   []string `json:"following"`
}

// MediaType identifies the kind of media attached to a post.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Post is a feed entry.
//
// Username and UserAvatar are denormalized copies of the owner's profile
// taken at creation time. They change only through the explicit
// UpdateProfile cascade, never as a side effect of anything else.
//
// Tags are the hashtag tokens extracted from Content at creation,
// first-occurrence order, duplicates kept. They are immutable afterwards.
type Post struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
	MediaURL   string    `json:"media_url,omitempty"`
	MediaType  MediaType `json:"media_type,omitempty"`
	Likes      []string  `json:"likes"`
	Comments   []Comment `json:"comments"`
	Tags       []string  `json:"tags"`
	Timestamp  time.Time `json:"timestamp"`
}

// HasMedia reports whether the post carries a media attachment.
func (p Post) HasMedia() bool {
	return p.MediaURL != ""
}

// Comment is an immutable entry in a post's comment sequence.
// Comments are append-only and are never edited or deleted.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationType categorizes a notification.
type NotificationType string

const (
	NotifyLike    NotificationType = "like"
	NotifyComment NotificationType = "comment"
	NotifyFollow  NotificationType = "follow"
)

// Notification records an interaction directed at a user.
//
// PostID is present for like and comment notifications and absent for
// follow. Notifications are never deleted; the only mutation is flipping
// Read to true.
type Notification struct {
	ID           string           `json:"id"`
	Type         NotificationType `json:"type"`
	FromUserID   string           `json:"from_user_id"`
	FromUsername string           `json:"from_username"`
	ToUserID     string           `json:"to_user_id"`
	PostID       string           `json:"post_id,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
	Read         bool             `json:"read"`
}

// TagCount pairs a hashtag with its occurrence count across all posts.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
