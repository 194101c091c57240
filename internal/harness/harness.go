package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/vibestream/internal/feed"
	"github.com/roach88/vibestream/internal/seed"
	"github.com/roach88/vibestream/internal/testutil"
)

// TraceEvent records one executed step and its observable outcome.
type TraceEvent struct {
	Op      string   `json:"op"`
	Actor   string   `json:"actor"`
	Post    string   `json:"post,omitempty"`
	User    string   `json:"user,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Outcome string   `json:"outcome,omitempty"`
	Marked  int      `json:"marked,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: all assertions held.
	Pass bool `json:"pass"`

	// Trace contains one event per executed step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Store is the final state, for inspection beyond the assertions.
	Store *feed.Store `json:"-"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

func (r *Result) addTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh store seeded from its fixture, with
// a deterministic clock and a sequence id generator, so repeated runs
// produce identical traces and final state. Step failures abort the run;
// assertion failures are collected on the result instead.
func Run(scenario *Scenario) (*Result, error) {
	st := feed.NewStore(
		feed.WithClock(testutil.NewClock()),
		feed.WithIDGenerator(testutil.NewSequenceGenerator("id")),
		feed.WithLogger(slog.New(slog.DiscardHandler)),
	)

	doc := seed.Default()
	if scenario.Seed != "" {
		var err error
		doc, err = seed.Load(scenario.Seed)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed: %w", err)
		}
	}
	if err := doc.Apply(st); err != nil {
		return nil, fmt.Errorf("failed to apply seed: %w", err)
	}

	result := NewResult()
	result.Store = st

	for i, step := range scenario.Steps {
		if err := executeStep(st, step, result); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}

	EvaluateAssertions(st, scenario.Assertions, result)
	return result, nil
}

// executeStep performs one step against the store and records its trace
// event. Scenario steps reference users by username and posts by seed id.
func executeStep(st *feed.Store, step Step, result *Result) error {
	// create_profile is the one op whose actor does not exist yet.
	if step.Op == OpCreateProfile {
		u, err := st.CreateProfile(feed.NewProfile{
			DisplayName: step.DisplayName,
			Username:    step.Username,
			Bio:         step.Bio,
		})
		if err != nil {
			return err
		}
		result.addTrace(TraceEvent{Op: OpCreateProfile, Actor: u.Username, Outcome: "created"})
		return nil
	}

	actor, err := st.UserByUsername(step.As)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpPost:
		p, err := st.CreatePost(actor.ID, feed.Draft{
			Content:   step.Content,
			MediaURL:  step.MediaURL,
			MediaType: feed.MediaType(step.MediaType),
		})
		if err != nil {
			return err
		}
		result.addTrace(TraceEvent{Op: OpPost, Actor: step.As, Tags: p.Tags, Outcome: "posted"})

	case OpLike:
		liked, err := st.ToggleLike(actor.ID, step.Post)
		if err != nil {
			return err
		}
		outcome := "unliked"
		if liked {
			outcome = "liked"
		}
		result.addTrace(TraceEvent{Op: OpLike, Actor: step.As, Post: step.Post, Outcome: outcome})

	case OpComment:
		if _, err := st.AddComment(actor.ID, step.Post, step.Text); err != nil {
			return err
		}
		result.addTrace(TraceEvent{Op: OpComment, Actor: step.As, Post: step.Post, Outcome: "commented"})

	case OpFollow:
		target, err := st.UserByUsername(step.User)
		if err != nil {
			return err
		}
		following, err := st.ToggleFollow(actor.ID, target.ID)
		if err != nil {
			return err
		}
		outcome := "not_following"
		if following {
			outcome = "following"
		}
		result.addTrace(TraceEvent{Op: OpFollow, Actor: step.As, User: step.User, Outcome: outcome})

	case OpMarkRead:
		marked := st.MarkAllRead(actor.ID)
		result.addTrace(TraceEvent{Op: OpMarkRead, Actor: step.As, Outcome: "marked_read", Marked: marked})

	case OpUpdateProfile:
		if _, err := st.UpdateProfile(actor.ID, feed.ProfileEdit{
			DisplayName: step.DisplayName,
			Bio:         step.Bio,
		}); err != nil {
			return err
		}
		result.addTrace(TraceEvent{Op: OpUpdateProfile, Actor: step.As, Outcome: "updated"})

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	return nil
}
