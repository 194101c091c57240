package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfile_NormalizesUsername(t *testing.T) {
	s := newTestStore(t)

	u, err := s.CreateProfile(NewProfile{DisplayName: "Riley Quinn", Username: "Riley Quinn", Bio: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "riley_quinn", u.Username)
	assert.Equal(t, "Riley Quinn", u.DisplayName)
}

func TestCreateProfile_AvatarKeyedByRawInput(t *testing.T) {
	s := newTestStore(t)

	u, err := s.CreateProfile(NewProfile{DisplayName: "Riley", Username: "Riley Quinn"})
	require.NoError(t, err)

	// The avatar seed uses the raw input, not the normalized username.
	assert.Equal(t, "https://picsum.photos/seed/Riley Quinn/200", u.Avatar)
}

func TestCreateProfile_StartsWithEmptyGraph(t *testing.T) {
	s := newTestStore(t)

	u, err := s.CreateProfile(NewProfile{DisplayName: "New", Username: "new"})
	require.NoError(t, err)

	assert.Empty(t, u.Followers)
	assert.Empty(t, u.Following)
	assert.Equal(t, 0, s.PostCount(u.ID))

	users := s.Users()
	assert.Equal(t, u.ID, users[len(users)-1].ID, "new user appends to the collection")
}

func TestCreateProfile_DuplicateUsernamesPermitted(t *testing.T) {
	s := newTestStore(t)

	a, err := s.CreateProfile(NewProfile{DisplayName: "One", Username: "dupe"})
	require.NoError(t, err)
	b, err := s.CreateProfile(NewProfile{DisplayName: "Two", Username: "dupe"})
	require.NoError(t, err)

	assert.Equal(t, a.Username, b.Username)
	assert.NotEqual(t, a.ID, b.ID, "ids stay unique even when usernames collide")
}

func TestUpdateProfile_ReplacesOnlyEditableFields(t *testing.T) {
	s := newTestStore(t)

	before, err := s.UserByID("user_1")
	require.NoError(t, err)

	updated, err := s.UpdateProfile("user_1", ProfileEdit{DisplayName: "Alexandra Rivers", Bio: "new bio"})
	require.NoError(t, err)

	assert.Equal(t, "Alexandra Rivers", updated.DisplayName)
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, before.Username, updated.Username)
	assert.Equal(t, before.Avatar, updated.Avatar)
	assert.Equal(t, before.Followers, updated.Followers)
	assert.Equal(t, before.Following, updated.Following)
}

func TestUpdateProfile_CascadesDenormalizedFieldsOntoOwnPosts(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.UpdateProfile("user_1", ProfileEdit{DisplayName: "A", Bio: "b"})
	require.NoError(t, err)

	for _, p := range s.Posts() {
		if p.UserID == "user_1" {
			assert.Equal(t, updated.Username, p.Username)
			assert.Equal(t, updated.Avatar, p.UserAvatar)
		} else {
			// Other users' posts are untouched by the cascade.
			assert.Equal(t, "sara_designs", p.Username)
		}
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateProfile("ghost", ProfileEdit{DisplayName: "x"})
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestSelectProfile(t *testing.T) {
	s := newTestStore(t)

	u, err := s.SelectProfile("user_2")
	require.NoError(t, err)
	assert.Equal(t, "sara_designs", u.Username)

	_, err = s.SelectProfile("ghost")
	assert.True(t, IsNotFound(err), "got %v", err)
}

func TestNormalizeUsername(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "alex", "alex"},
		{"uppercase lowered", "AlexVibes", "alexvibes"},
		{"space to underscore", "Alex Rivers", "alex_rivers"},
		{"each whitespace rune replaced", "a  b", "a__b"},
		{"tab and newline", "a\tb\nc", "a_b_c"},
		{"leading and trailing", " pad ", "_pad_"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeUsername(tc.in))
		})
	}
}
