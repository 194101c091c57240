package feed

import (
	"fmt"
	"log/slog"
	"sync"
)

// Store holds the canonical feed state: users in creation order, posts
// most-recent-first, notifications most-recent-first.
//
// All writes go through the named operations (profile.go, graph.go,
// posts.go, notify.go). Each write replaces the affected collection with a
// freshly built slice, and accessors return copies, so readers never see a
// partially applied mutation.
//
// Thread-safety: guarded by an RWMutex. The model is single-session, but
// the asynchronous enhancement path may read concurrently with a user
// action, so accessors must be safe from any goroutine.
type Store struct {
	mu     sync.RWMutex
	clock  Clock
	ids    IDGenerator
	logger *slog.Logger

	users         []User
	posts         []Post
	notifications []Notification
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the timestamp source.
func WithClock(c Clock) StoreOption {
	return func(s *Store) {
		s.clock = c
	}
}

// WithIDGenerator sets the entity id source.
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) {
		s.ids = g
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates an empty store.
// Defaults: wall-clock timestamps, UUIDv7 ids, slog.Default().
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		clock:  WallClock{},
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed installs initial users and posts, replacing any existing state.
//
// Seed state must already satisfy the store invariants; violations are
// rejected with an INVALID_SEED error rather than repaired:
//   - user and post ids are unique
//   - follow edges are symmetric and never self-referential
//   - every post (and like, and comment) references an existing user
//   - denormalized username/avatar on posts agree with the owner's profile
func (s *Store) Seed(users []User, posts []Post) error {
	byID := make(map[string]User, len(users))
	for _, u := range users {
		if _, dup := byID[u.ID]; dup {
			return &Error{Code: ErrCodeInvalidSeed, Message: "duplicate user id", EntityID: u.ID}
		}
		byID[u.ID] = u
	}

	for _, u := range users {
		for _, fid := range u.Following {
			if fid == u.ID {
				return &Error{Code: ErrCodeInvalidSeed, Message: "user follows itself", EntityID: u.ID}
			}
			target, ok := byID[fid]
			if !ok {
				return &Error{Code: ErrCodeInvalidSeed, Message: "following references unknown user", EntityID: fid}
			}
			if !contains(target.Followers, u.ID) {
				return &Error{
					Code:     ErrCodeInvalidSeed,
					Message:  fmt.Sprintf("asymmetric follow edge: %s follows %s but is not in its followers", u.ID, fid),
					EntityID: u.ID,
				}
			}
		}
		for _, fid := range u.Followers {
			if fid == u.ID {
				return &Error{Code: ErrCodeInvalidSeed, Message: "user is its own follower", EntityID: u.ID}
			}
			follower, ok := byID[fid]
			if !ok {
				return &Error{Code: ErrCodeInvalidSeed, Message: "followers references unknown user", EntityID: fid}
			}
			if !contains(follower.Following, u.ID) {
				return &Error{
					Code:     ErrCodeInvalidSeed,
					Message:  fmt.Sprintf("asymmetric follow edge: %s has follower %s which does not follow back", u.ID, fid),
					EntityID: u.ID,
				}
			}
		}
	}

	postIDs := make(map[string]bool, len(posts))
	for _, p := range posts {
		if postIDs[p.ID] {
			return &Error{Code: ErrCodeInvalidSeed, Message: "duplicate post id", EntityID: p.ID}
		}
		postIDs[p.ID] = true

		owner, ok := byID[p.UserID]
		if !ok {
			return &Error{Code: ErrCodeInvalidSeed, Message: "post references unknown user", EntityID: p.ID}
		}
		if p.Username != owner.Username || p.UserAvatar != owner.Avatar {
			return &Error{Code: ErrCodeInvalidSeed, Message: "post denormalized fields disagree with owner profile", EntityID: p.ID}
		}
		for _, uid := range p.Likes {
			if _, ok := byID[uid]; !ok {
				return &Error{Code: ErrCodeInvalidSeed, Message: "like references unknown user", EntityID: p.ID}
			}
		}
		for _, c := range p.Comments {
			if _, ok := byID[c.UserID]; !ok {
				return &Error{Code: ErrCodeInvalidSeed, Message: "comment references unknown user", EntityID: p.ID}
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = copyUsers(users)
	s.posts = copyPosts(posts)
	s.notifications = nil

	s.logger.Debug("store seeded", "users", len(users), "posts", len(posts))
	return nil
}

// Users returns a copy of all users in creation order.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.users)
}

// Posts returns a copy of the feed, most-recent-first.
func (s *Store) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPosts(s.posts)
}

// Notifications returns a copy of all notifications, most-recent-first.
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UserByID looks up a user by id.
func (s *Store) UserByID(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByIDLocked(id)
}

// UserByUsername looks up a user by username.
// Usernames are not guaranteed unique; the first match in store order wins.
func (s *Store) UserByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return User{}, newUserNotFound(username)
}

// PostByID looks up a post by id.
func (s *Store) PostByID(id string) (Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return copyPost(p), nil
		}
	}
	return Post{}, newPostNotFound(id)
}

// userByIDLocked looks up a user while holding the lock.
// Returns a copy; the caller never aliases store-owned memory.
func (s *Store) userByIDLocked(id string) (User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return User{}, newUserNotFound(id)
}

// userIndexLocked returns the slice index of a user id, or -1.
func (s *Store) userIndexLocked(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// postIndexLocked returns the slice index of a post id, or -1.
func (s *Store) postIndexLocked(id string) int {
	for i, p := range s.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// contains reports membership of id in a string set slice.
func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// without returns a new slice with id removed.
func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// withAppended returns a new slice with id appended.
func withAppended(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

func copyUser(u User) User {
	c := u
	c.Followers = append([]string(nil), u.Followers...)
	c.Following = append([]string(nil), u.Following...)
	return c
}

func copyUsers(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = copyUser(u)
	}
	return out
}

func copyPost(p Post) Post {
	c := p
	c.Likes = append([]string(nil), p.Likes...)
	c.Comments = append([]Comment(nil), p.Comments...)
	c.Tags = append([]string(nil), p.Tags...)
	return c
}

func copyPosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = copyPost(p)
	}
	return out
}
