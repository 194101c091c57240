package feed

import (
	"sort"
	"strings"
)

// DefaultTrendingLimit caps the trending tag list.
const DefaultTrendingLimit = 5

// DefaultSuggestionLimit caps the suggested-users list.
const DefaultSuggestionLimit = 4

// TrendingTags frequency-counts every tag occurrence across all posts and
// returns the top tags, descending by count. Ties break by first-seen
// order in the feed scan (most-recent-first), which keeps the result
// stable for a given feed state.
//
// limit <= 0 uses DefaultTrendingLimit.
func (s *Store) TrendingTags(limit int) []TagCount {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, p := range s.posts {
		for _, tag := range p.Tags {
			if _, seen := counts[tag]; !seen {
				firstSeen[tag] = order
				order++
			}
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Tag] < firstSeen[out[j].Tag]
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SuggestedUsers returns users the actor might follow: everyone except the
// actor and anyone already followed, in store order, capped at limit.
// There is no intentional ranking beyond store order.
//
// limit <= 0 uses DefaultSuggestionLimit.
func (s *Store) SuggestedUsers(actorID string, limit int) ([]User, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	actor, err := s.userByIDLocked(actorID)
	if err != nil {
		return nil, err
	}

	var out []User
	for _, u := range s.users {
		if u.ID == actorID || contains(actor.Following, u.ID) {
			continue
		}
		out = append(out, copyUser(u))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// SearchPosts filters the feed by a case-insensitive substring match
// against post content, any tag, or the author's username. An empty query
// returns the whole feed.
func (s *Store) SearchPosts(query string) []Post {
	if query == "" {
		return s.Posts()
	}
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Post
	for _, p := range s.posts {
		if postMatches(p, q) {
			out = append(out, copyPost(p))
		}
	}
	return out
}

// postMatches reports whether a post matches a lowercased query.
func postMatches(p Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Username), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// PostsBy returns the user's posts in feed order (most-recent-first).
func (s *Store) PostsBy(userID string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Post
	for _, p := range s.posts {
		if p.UserID == userID {
			out = append(out, copyPost(p))
		}
	}
	return out
}

// PostCount returns the number of posts the user owns, derived live from
// the post collection. Nothing stores a post counter, so it can never
// drift.
func (s *Store) PostCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, p := range s.posts {
		if p.UserID == userID {
			count++
		}
	}
	return count
}
