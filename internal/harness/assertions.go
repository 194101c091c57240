package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/vibestream/internal/feed"
)

// AssertionError is returned when an assertion fails. It includes the
// expected and actual outcomes to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions checks every assertion against the final state and
// records each failure on the result.
func EvaluateAssertions(st *feed.Store, assertions []Assertion, result *Result) {
	for i, a := range assertions {
		if err := evaluateAssertion(st, a); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %s", i, err))
		}
	}
}

func evaluateAssertion(st *feed.Store, a Assertion) error {
	switch a.Type {
	case AssertFollowing:
		return assertFollowing(st, a)
	case AssertUnreadCount:
		return assertUnreadCount(st, a)
	case AssertFeedLength:
		return assertFeedLength(st, a)
	case AssertLikes:
		return assertLikes(st, a)
	case AssertCommentCount:
		return assertCommentCount(st, a)
	case AssertTrending:
		return assertTrending(st, a)
	case AssertPostCount:
		return assertPostCount(st, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertFollowing checks the state of the follow edge from User to Target.
func assertFollowing(st *feed.Store, a Assertion) error {
	user, err := st.UserByUsername(a.User)
	if err != nil {
		return err
	}
	target, err := st.UserByUsername(a.Target)
	if err != nil {
		return err
	}

	actual := false
	for _, id := range user.Following {
		if id == target.ID {
			actual = true
			break
		}
	}

	if actual != a.Value {
		return &AssertionError{
			Type:     AssertFollowing,
			Expected: fmt.Sprintf("%s following %s = %v", a.User, a.Target, a.Value),
			Actual:   fmt.Sprintf("%v", actual),
		}
	}
	return nil
}

func assertUnreadCount(st *feed.Store, a Assertion) error {
	user, err := st.UserByUsername(a.User)
	if err != nil {
		return err
	}

	if got := st.UnreadCount(user.ID); got != a.Count {
		return &AssertionError{
			Type:     AssertUnreadCount,
			Expected: fmt.Sprintf("%d unread notifications for %s", a.Count, a.User),
			Actual:   fmt.Sprintf("%d", got),
		}
	}
	return nil
}

func assertFeedLength(st *feed.Store, a Assertion) error {
	if got := len(st.Posts()); got != a.Count {
		return &AssertionError{
			Type:     AssertFeedLength,
			Expected: fmt.Sprintf("%d posts in feed", a.Count),
			Actual:   fmt.Sprintf("%d", got),
		}
	}
	return nil
}

func assertLikes(st *feed.Store, a Assertion) error {
	post, err := st.PostByID(a.Post)
	if err != nil {
		return err
	}

	if got := len(post.Likes); got != a.Count {
		return &AssertionError{
			Type:     AssertLikes,
			Expected: fmt.Sprintf("%d likes on %s", a.Count, a.Post),
			Actual:   fmt.Sprintf("%d", got),
		}
	}
	return nil
}

func assertCommentCount(st *feed.Store, a Assertion) error {
	post, err := st.PostByID(a.Post)
	if err != nil {
		return err
	}

	if got := len(post.Comments); got != a.Count {
		return &AssertionError{
			Type:     AssertCommentCount,
			Expected: fmt.Sprintf("%d comments on %s", a.Count, a.Post),
			Actual:   fmt.Sprintf("%d", got),
		}
	}
	return nil
}

// assertTrending checks the leading trending tags in order.
func assertTrending(st *feed.Store, a Assertion) error {
	got := st.TrendingTags(len(a.Tags))
	names := make([]string, len(got))
	for i, tc := range got {
		names[i] = tc.Tag
	}

	if len(names) != len(a.Tags) {
		return &AssertionError{
			Type:     AssertTrending,
			Expected: fmt.Sprintf("trending tags %v", a.Tags),
			Actual:   fmt.Sprintf("%v", names),
		}
	}
	for i := range names {
		if names[i] != a.Tags[i] {
			return &AssertionError{
				Type:     AssertTrending,
				Expected: fmt.Sprintf("trending tags %v", a.Tags),
				Actual:   fmt.Sprintf("%v", names),
			}
		}
	}
	return nil
}

func assertPostCount(st *feed.Store, a Assertion) error {
	user, err := st.UserByUsername(a.User)
	if err != nil {
		return err
	}

	if got := st.PostCount(user.ID); got != a.Count {
		return &AssertionError{
			Type:     AssertPostCount,
			Expected: fmt.Sprintf("%d posts by %s", a.Count, a.User),
			Actual:   fmt.Sprintf("%d", got),
		}
	}
	return nil
}
