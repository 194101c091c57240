package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_ExtractsTagsInOrderWithDuplicates(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePost("user_1", Draft{Content: "hello #foo #bar #foo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "bar", "foo"}, p.Tags)
}

func TestCreatePost_PrependsToFeed(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePost("user_1", Draft{Content: "fresh"})
	require.NoError(t, err)

	posts := s.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, p.ID, posts[0].ID, "new post must be first (most-recent-first)")
	assert.Equal(t, "post_1", posts[1].ID)
	assert.Equal(t, "post_2", posts[2].ID)
}

func TestCreatePost_BlankContentNoMediaRejected(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Posts())

	_, err := s.CreatePost("user_1", Draft{Content: "   \t "})
	assert.True(t, IsEmptyPost(err), "got %v", err)
	assert.Len(t, s.Posts(), before, "rejected post must leave the feed unchanged")
}

func TestCreatePost_MediaOnlyIsAccepted(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePost("user_1", Draft{
		MediaURL:  "https://example.com/clip.mp4",
		MediaType: MediaVideo,
	})
	require.NoError(t, err)
	assert.True(t, p.HasMedia())
	assert.Empty(t, p.Tags)
}

func TestCreatePost_MediaFieldsMustBeMutual(t *testing.T) {
	s := newTestStore(t)

	cases := []struct {
		name  string
		draft Draft
	}{
		{"url without type", Draft{Content: "x", MediaURL: "https://example.com/a.jpg"}},
		{"type without url", Draft{Content: "x", MediaType: MediaImage}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreatePost("user_1", tc.draft)
			var fe *Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, ErrCodeInvalidMedia, fe.Code)
		})
	}
}

func TestCreatePost_SnapshotsOwnerProfile(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePost("user_2", Draft{Content: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "sara_designs", p.Username)
	assert.Equal(t, "https://picsum.photos/seed/sara/200", p.UserAvatar)
	assert.False(t, p.Timestamp.IsZero())
}

func TestCreatePost_UnknownUser(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePost("ghost", Draft{Content: "boo"})
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestToggleLike_LikeThenUnlikeRestoresExactly(t *testing.T) {
	s := newTestStore(t)

	before, err := s.PostByID("post_1")
	require.NoError(t, err)

	liked, err := s.ToggleLike("user_3", "post_1")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = s.ToggleLike("user_3", "post_1")
	require.NoError(t, err)
	assert.False(t, liked)

	after, err := s.PostByID("post_1")
	require.NoError(t, err)
	assert.Equal(t, before.Likes, after.Likes, "like pair should restore the like set exactly")

	// The like notification from the first toggle stays; the unlike adds none.
	assert.Len(t, notificationsOfType(s, NotifyLike), 1)
}

func TestToggleLike_NotifiesOwnerOnLikeTransitionOnly(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ToggleLike("user_3", "post_1")
	require.NoError(t, err)

	notifs := notificationsOfType(s, NotifyLike)
	require.Len(t, notifs, 1)
	assert.Equal(t, "user_1", notifs[0].ToUserID)
	assert.Equal(t, "user_3", notifs[0].FromUserID)
	assert.Equal(t, "post_1", notifs[0].PostID)
}

func TestToggleLike_SelfLikeNeverNotifies(t *testing.T) {
	s := newTestStore(t)

	liked, err := s.ToggleLike("user_1", "post_1")
	require.NoError(t, err)
	assert.True(t, liked, "self-like still changes the like set")

	assert.Empty(t, s.Notifications(), "self-like must not notify")
}

func TestToggleLike_UnknownPost(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ToggleLike("user_1", "nope")
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestAddComment_AppendsPreservingOrder(t *testing.T) {
	s := newTestStore(t)

	c1, err := s.AddComment("user_3", "post_1", "first")
	require.NoError(t, err)
	c2, err := s.AddComment("user_2", "post_1", "second")
	require.NoError(t, err)

	p, err := s.PostByID("post_1")
	require.NoError(t, err)
	require.Len(t, p.Comments, 3) // seed comment + two new
	assert.Equal(t, c1.ID, p.Comments[1].ID)
	assert.Equal(t, c2.ID, p.Comments[2].ID)
	assert.Equal(t, "tech_guru", p.Comments[1].Username)
	assert.True(t, c2.Timestamp.After(c1.Timestamp))
}

func TestAddComment_NotifiesOwnerUnlessSelf(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddComment("user_3", "post_1", "nice")
	require.NoError(t, err)
	_, err = s.AddComment("user_1", "post_1", "thanks")
	require.NoError(t, err)

	notifs := notificationsOfType(s, NotifyComment)
	require.Len(t, notifs, 1, "self-comment must not notify")
	assert.Equal(t, "user_1", notifs[0].ToUserID)
	assert.Equal(t, "post_1", notifs[0].PostID)
}

func TestAddComment_UnknownPost(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddComment("user_1", "nope", "hello")
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestExtractTags(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"no tags", "plain text", []string{}},
		{"empty", "", []string{}},
		{"single", "ship it #golang", []string{"golang"}},
		{"order and duplicates", "hello #foo #bar #foo", []string{"foo", "bar", "foo"}},
		{"adjacent", "#a#b", []string{"a", "b"}},
		{"mid-word", "x#y", []string{"y"}},
		{"punctuation terminates", "#wip!done", []string{"wip"}},
		{"underscore and digits", "#go_2", []string{"go_2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractTags(tc.content))
		})
	}
}
