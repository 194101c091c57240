package feed

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NewProfile is the signup payload.
type NewProfile struct {
	DisplayName string
	Username    string
	Bio         string
}

// ProfileEdit is the profile-update payload. Only these two fields are
// editable; username and avatar are fixed at signup.
type ProfileEdit struct {
	DisplayName string
	Bio         string
}

// avatarURLTemplate produces a deterministic placeholder avatar keyed by
// the raw (un-normalized) username input.
const avatarURLTemplate = "https://picsum.photos/seed/%s/200"

// CreateProfile allocates a new user and appends it to the user collection.
//
// The username is normalized: NFC form, lowercased, every whitespace rune
// replaced with an underscore. No uniqueness check is performed - duplicate
// usernames are permitted. Follower and following sets start empty.
//
// The returned user is the new active session identity; the caller owns
// the session.
func (s *Store) CreateProfile(p NewProfile) (User, error) {
	u := User{
		ID:          s.ids.NewID(),
		Username:    NormalizeUsername(p.Username),
		DisplayName: p.DisplayName,
		Avatar:      fmt.Sprintf(avatarURLTemplate, p.Username),
		Bio:         p.Bio,
		Followers:   []string{},
		Following:   []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := copyUsers(s.users)
	s.users = append(users, u)

	s.logger.Info("profile created", "user_id", u.ID, "username", u.Username)
	return copyUser(u), nil
}

// UpdateProfile replaces exactly the display name and bio of the matching
// user, leaving username, avatar and the social graph untouched, then
// cascades the owner's username and avatar onto every post the user owns.
//
// The cascade is materialized-view maintenance for the denormalized fields
// on Post. Today's edit payload cannot change its inputs, so the cascade
// rewrites the same values; it exists so that any future edit path that
// does touch username or avatar stays consistent by construction.
func (s *Store) UpdateProfile(userID string, edit ProfileEdit) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndexLocked(userID)
	if idx < 0 {
		return User{}, newUserNotFound(userID)
	}

	users := copyUsers(s.users)
	users[idx].DisplayName = edit.DisplayName
	users[idx].Bio = edit.Bio
	updated := users[idx]
	s.users = users

	posts := copyPosts(s.posts)
	for i := range posts {
		if posts[i].UserID == userID {
			posts[i].Username = updated.Username
			posts[i].UserAvatar = updated.Avatar
		}
	}
	s.posts = posts

	s.logger.Info("profile updated", "user_id", userID)
	return copyUser(updated), nil
}

// SelectProfile resolves a user id to a session identity.
// Used both for login (choosing among seeded users) and immediately after
// signup. The store does not track the active session; the caller does.
func (s *Store) SelectProfile(userID string) (User, error) {
	return s.UserByID(userID)
}

// NormalizeUsername canonicalizes a raw username input: NFC normalization,
// lowercase, each whitespace rune replaced with an underscore.
func NormalizeUsername(raw string) string {
	lowered := strings.ToLower(norm.NFC.String(raw))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, lowered)
}
