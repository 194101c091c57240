package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_LikeAndComment(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "like-and-comment.yaml"))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass, "assertion errors: %v", result.Errors)
	require.Len(t, result.Trace, 3)
	assert.Equal(t, "liked", result.Trace[0].Outcome)
	assert.Equal(t, "commented", result.Trace[1].Outcome)
	assert.Equal(t, 1, result.Trace[2].Marked)

	// The final store is available for inspection beyond the assertions.
	alex, err := result.Store.UserByUsername("alex_vibes")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Store.UnreadCount(alex.ID))
}

func TestRun_FollowAndPost(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "follow-and-post.yaml"))
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass, "assertion errors: %v", result.Errors)
	assert.Equal(t, "following", result.Trace[0].Outcome)
	assert.Equal(t, []string{"golang", "buildinpublic"}, result.Trace[1].Tags)
	assert.Equal(t, "not_following", result.Trace[2].Outcome)
}

func TestRun_CollectsAssertionFailures(t *testing.T) {
	s := &Scenario{
		Name:        "wrong-expectation",
		Description: "an assertion that cannot hold",
		Steps:       []Step{{As: "alex_vibes", Op: OpMarkRead}},
		Assertions: []Assertion{
			{Type: AssertFeedLength, Count: 99},
			{Type: AssertLikes, Post: "post_1", Count: 1},
		},
	}

	result, err := Run(s)
	require.NoError(t, err, "assertion failures are collected, not returned")

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1, "only the feed_length assertion fails")
	assert.Contains(t, result.Errors[0], "feed_length")
	assert.Contains(t, result.Errors[0], "99")
}

func TestRun_UnknownActorAborts(t *testing.T) {
	s := &Scenario{
		Name:        "ghost-actor",
		Description: "a step by a user that does not exist",
		Steps:       []Step{{As: "nobody", Op: OpMarkRead}},
		Assertions:  []Assertion{{Type: AssertFeedLength, Count: 2}},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0")
}

func TestRun_CreateProfileThenPost(t *testing.T) {
	s := &Scenario{
		Name:        "signup-flow",
		Description: "a new profile can act immediately",
		Steps: []Step{
			{Op: OpCreateProfile, Username: "New User", DisplayName: "Newbie"},
			{As: "new_user", Op: OpPost, Content: "first! #hello"},
		},
		Assertions: []Assertion{
			{Type: AssertFeedLength, Count: 3},
			{Type: AssertPostCount, User: "new_user", Count: 1},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass, "assertion errors: %v", result.Errors)
	assert.Equal(t, "new_user", result.Trace[0].Actor, "trace records the normalized username")
	assert.Equal(t, []string{"hello"}, result.Trace[1].Tags)
}

func TestRun_IsDeterministic(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "follow-and-post.yaml"))
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, first.Trace, second.Trace)
	assert.Equal(t, BuildSnapshot(s.Name, first), BuildSnapshot(s.Name, second))
}
