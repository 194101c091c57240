package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/vibestream/internal/feed"
)

// NotificationView is a notification rendered for golden comparison.
// Users appear by username and generated ids and timestamps are omitted,
// so golden files only change when observable behavior changes.
type NotificationView struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Actor     string `json:"actor"`
	Post      string `json:"post,omitempty"`
	Read      bool   `json:"read"`
}

// Snapshot captures the trace and the observable final state of a
// scenario execution for golden comparison.
type Snapshot struct {
	ScenarioName  string             `json:"scenario_name"`
	Trace         []TraceEvent       `json:"trace"`
	FeedLength    int                `json:"feed_length"`
	Notifications []NotificationView `json:"notifications"`
}

// BuildSnapshot renders a result into its golden representation.
func BuildSnapshot(scenarioName string, result *Result) Snapshot {
	st := result.Store

	notifications := st.Notifications()
	views := make([]NotificationView, len(notifications))
	for i, n := range notifications {
		views[i] = NotificationView{
			Type:      string(n.Type),
			Recipient: usernameOf(st, n.ToUserID),
			Actor:     n.FromUsername,
			Post:      n.PostID,
			Read:      n.Read,
		}
	}

	return Snapshot{
		ScenarioName:  scenarioName,
		Trace:         result.Trace,
		FeedLength:    len(st.Posts()),
		Notifications: views,
	}
}

// RunWithGolden executes a scenario and compares its snapshot against a
// golden file at testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution fails; a snapshot mismatch fails
// the test through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	snapshot := BuildSnapshot(scenario.Name, result)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}

// usernameOf resolves a user id for display, falling back to the raw id
// when the user is unknown.
func usernameOf(st *feed.Store, id string) string {
	u, err := st.UserByID(id)
	if err != nil {
		return id
	}
	return u.Username
}
