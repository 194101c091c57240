package feed

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/vibestream/internal/testutil"
)

// Seed fixture mirroring the default three-user graph:
// alex follows sara and jordan, sara follows alex, jordan follows sara.

func seedUsers() []User {
	return []User{
		{
			ID:          "user_1",
			Username:    "alex_vibes",
			DisplayName: "Alex Rivers",
			Avatar:      "https://picsum.photos/seed/alex/200",
			Bio:         "Capturing moments.",
			Followers:   []string{"user_2"},
			Following:   []string{"user_2", "user_3"},
		},
		{
			ID:          "user_2",
			Username:    "sara_designs",
			DisplayName: "Sara Chen",
			Avatar:      "https://picsum.photos/seed/sara/200",
			Bio:         "Product designer.",
			Followers:   []string{"user_1", "user_3"},
			Following:   []string{"user_1"},
		},
		{
			ID:          "user_3",
			Username:    "tech_guru",
			DisplayName: "Jordan Smith",
			Avatar:      "https://picsum.photos/seed/jordan/200",
			Bio:         "Living in the future.",
			Followers:   []string{"user_1"},
			Following:   []string{"user_2"},
		},
	}
}

func seedPosts() []Post {
	base := time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC)
	return []Post{
		{
			ID:         "post_1",
			UserID:     "user_1",
			Username:   "alex_vibes",
			UserAvatar: "https://picsum.photos/seed/alex/200",
			Content:    "Just watched the sunrise over the city.",
			MediaURL:   "https://picsum.photos/seed/city/800/600",
			MediaType:  MediaImage,
			Likes:      []string{"user_2"},
			Comments: []Comment{
				{ID: "c1", UserID: "user_2", Username: "sara_designs", Text: "Stunning view!", Timestamp: base},
			},
			Tags:      []string{"city", "morning", "vibes"},
			Timestamp: base,
		},
		{
			ID:         "post_2",
			UserID:     "user_2",
			Username:   "sara_designs",
			UserAvatar: "https://picsum.photos/seed/sara/200",
			Content:    "Deep work session in my favorite corner.",
			MediaURL:   "https://picsum.photos/seed/desk/800/600",
			MediaType:  MediaImage,
			Likes:      []string{"user_1", "user_3"},
			Comments:   []Comment{},
			Tags:       []string{"design", "wfh"},
			Timestamp:  base.Add(-2 * time.Hour),
		},
	}
}

// newTestStore builds a deterministic store seeded with the fixture above.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore(
		WithClock(testutil.NewClock()),
		WithIDGenerator(testutil.NewSequenceGenerator("gen")),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, s.Seed(seedUsers(), seedPosts()))
	return s
}

// notificationsOfType filters notifications by type for assertions.
func notificationsOfType(s *Store, nt NotificationType) []Notification {
	var out []Notification
	for _, n := range s.Notifications() {
		if n.Type == nt {
			out = append(out, n)
		}
	}
	return out
}
