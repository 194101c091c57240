package feed

import (
	"regexp"
	"strings"
)

// hashtagPattern matches "#" followed by one or more word characters.
var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// Draft is the CreatePost payload.
// MediaURL and MediaType must be mutually present or both absent.
type Draft struct {
	Content   string
	MediaURL  string
	MediaType MediaType
}

// CreatePost prepends a new post to the feed (most-recent-first is a
// standing invariant of the post sequence).
//
// A draft with blank content and no media is rejected with EMPTY_POST and
// the feed is left unchanged. Hashtags are extracted from the content in
// first-occurrence order with duplicates kept; the stored tag omits the
// leading "#". The owner's username and avatar are snapshotted onto the
// post at creation.
func (s *Store) CreatePost(actorID string, d Draft) (Post, error) {
	if strings.TrimSpace(d.Content) == "" && d.MediaURL == "" {
		return Post{}, &Error{Code: ErrCodeEmptyPost, Message: "post needs content or media"}
	}
	if (d.MediaURL == "") != (d.MediaType == "") {
		return Post{}, &Error{Code: ErrCodeInvalidMedia, Message: "media url and media type must be set together"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.userByIDLocked(actorID)
	if err != nil {
		return Post{}, err
	}

	p := Post{
		ID:         s.ids.NewID(),
		UserID:     actor.ID,
		Username:   actor.Username,
		UserAvatar: actor.Avatar,
		Content:    d.Content,
		MediaURL:   d.MediaURL,
		MediaType:  d.MediaType,
		Likes:      []string{},
		Comments:   []Comment{},
		Tags:       ExtractTags(d.Content),
		Timestamp:  s.clock.Now(),
	}

	posts := make([]Post, 0, len(s.posts)+1)
	posts = append(posts, p)
	posts = append(posts, copyPosts(s.posts)...)
	s.posts = posts

	s.logger.Info("post created", "post_id", p.ID, "user_id", actorID, "tags", len(p.Tags))
	return copyPost(p), nil
}

// ToggleLike flips the actor's membership in the post's like set and
// returns whether the post is liked by the actor afterwards.
//
// A like notification goes to the post owner only on the unliked->liked
// transition, and never when the actor owns the post. Unlike emits
// nothing - notifications are not retracted.
func (s *Store) ToggleLike(actorID, postID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.userByIDLocked(actorID)
	if err != nil {
		return false, err
	}
	idx := s.postIndexLocked(postID)
	if idx < 0 {
		return false, newPostNotFound(postID)
	}

	wasLiked := contains(s.posts[idx].Likes, actorID)

	posts := copyPosts(s.posts)
	if wasLiked {
		posts[idx].Likes = without(posts[idx].Likes, actorID)
	} else {
		posts[idx].Likes = withAppended(posts[idx].Likes, actorID)
	}
	s.posts = posts

	if !wasLiked && posts[idx].UserID != actorID {
		s.emitLocked(NotifyLike, actor, posts[idx].UserID, postID)
	}

	s.logger.Debug("like toggled", "actor", actorID, "post_id", postID, "liked", !wasLiked)
	return !wasLiked, nil
}

// AddComment appends a comment to the post's sequence, preserving
// insertion order, and returns it.
//
// Precondition: text is non-empty after trimming. That validation lives at
// the UI boundary (internal/cli), not here.
//
// A comment notification goes to the post owner unless the actor owns the
// post.
func (s *Store) AddComment(actorID, postID, text string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.userByIDLocked(actorID)
	if err != nil {
		return Comment{}, err
	}
	idx := s.postIndexLocked(postID)
	if idx < 0 {
		return Comment{}, newPostNotFound(postID)
	}

	c := Comment{
		ID:        s.ids.NewID(),
		UserID:    actor.ID,
		Username:  actor.Username,
		Text:      text,
		Timestamp: s.clock.Now(),
	}

	posts := copyPosts(s.posts)
	posts[idx].Comments = append(posts[idx].Comments, c)
	s.posts = posts

	if posts[idx].UserID != actorID {
		s.emitLocked(NotifyComment, actor, posts[idx].UserID, postID)
	}

	s.logger.Debug("comment added", "actor", actorID, "post_id", postID, "comment_id", c.ID)
	return c, nil
}

// ExtractTags scans content for hashtag tokens ("#" + word characters) and
// returns the token text without the leading "#", in first-occurrence
// order. Duplicates are kept when repeated in the text.
func ExtractTags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
