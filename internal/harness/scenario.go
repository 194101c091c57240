package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: seed state, a flow of
// user actions, and assertions on the resulting state.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed is the path to a seed fixture YAML, relative to the scenario
	// file. Empty means the embedded default fixture.
	Seed string `yaml:"seed,omitempty"`

	// Steps is the action flow, executed in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state after all steps ran.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one user action. As names the acting user (by username); which
// other fields are required depends on Op.
type Step struct {
	// As is the acting user's username. Required for every op except
	// create_profile, which brings its user into existence.
	As string `yaml:"as,omitempty"`

	// Op is the action to perform. See the Op* constants.
	Op string `yaml:"op"`

	// Post references a post by id (like, comment).
	Post string `yaml:"post,omitempty"`

	// User references another user by username (follow).
	User string `yaml:"user,omitempty"`

	// Content is the post body (post).
	Content string `yaml:"content,omitempty"`

	// MediaURL and MediaType attach media to a post (post).
	MediaURL  string `yaml:"media_url,omitempty"`
	MediaType string `yaml:"media_type,omitempty"`

	// Text is the comment body (comment).
	Text string `yaml:"text,omitempty"`

	// Profile fields (create_profile, update_profile).
	Username    string `yaml:"username,omitempty"`
	DisplayName string `yaml:"display_name,omitempty"`
	Bio         string `yaml:"bio,omitempty"`
}

// Step op constants.
const (
	OpPost          = "post"
	OpLike          = "like"
	OpComment       = "comment"
	OpFollow        = "follow"
	OpMarkRead      = "mark_read"
	OpCreateProfile = "create_profile"
	OpUpdateProfile = "update_profile"
)

// Assertion validates one property of the final state. Users and targets
// are referenced by username.
type Assertion struct {
	// Type specifies the assertion type. See the Assert* constants.
	Type string `yaml:"type"`

	// User names the subject user (following, unread_count, post_count).
	User string `yaml:"user,omitempty"`

	// Target names the followee (following).
	Target string `yaml:"target,omitempty"`

	// Post references a post by id (likes, comment_count).
	Post string `yaml:"post,omitempty"`

	// Count is the expected count (unread_count, feed_length, likes,
	// comment_count, post_count).
	Count int `yaml:"count,omitempty"`

	// Value is the expected edge state (following).
	Value bool `yaml:"value,omitempty"`

	// Tags is the expected trending order (trending).
	Tags []string `yaml:"tags,omitempty"`
}

// Assertion type constants.
const (
	AssertFollowing    = "following"
	AssertUnreadCount  = "unread_count"
	AssertFeedLength   = "feed_length"
	AssertLikes        = "likes"
	AssertCommentCount = "comment_count"
	AssertTrending     = "trending"
	AssertPostCount    = "post_count"
)

// LoadScenario reads and parses a scenario YAML file. The seed path, if
// any, is resolved relative to the scenario file. Returns an error if the
// file is malformed, contains unknown fields (typos), or is missing
// required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Seed != "" && !filepath.IsAbs(scenario.Seed) {
		scenario.Seed = filepath.Join(filepath.Dir(path), scenario.Seed)
	}

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario checks that required fields are present and valid.
func ValidateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if s.Seed != "" {
		if _, err := os.Stat(s.Seed); os.IsNotExist(err) {
			return fmt.Errorf("seed file not found: %s", s.Seed)
		}
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep enforces the per-op required fields.
func validateStep(index int, step *Step) error {
	if step.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}
	if step.As == "" && step.Op != OpCreateProfile {
		return fmt.Errorf("steps[%d]: as is required for op %q", index, step.Op)
	}

	switch step.Op {
	case OpPost:
		if step.Content == "" && step.MediaURL == "" {
			return fmt.Errorf("steps[%d]: post needs content or media_url", index)
		}
	case OpLike:
		if step.Post == "" {
			return fmt.Errorf("steps[%d]: post is required for like", index)
		}
	case OpComment:
		if step.Post == "" {
			return fmt.Errorf("steps[%d]: post is required for comment", index)
		}
		if step.Text == "" {
			return fmt.Errorf("steps[%d]: text is required for comment", index)
		}
	case OpFollow:
		if step.User == "" {
			return fmt.Errorf("steps[%d]: user is required for follow", index)
		}
	case OpMarkRead:
		// No extra fields.
	case OpCreateProfile:
		if step.Username == "" {
			return fmt.Errorf("steps[%d]: username is required for create_profile", index)
		}
		if step.DisplayName == "" {
			return fmt.Errorf("steps[%d]: display_name is required for create_profile", index)
		}
	case OpUpdateProfile:
		if step.DisplayName == "" {
			return fmt.Errorf("steps[%d]: display_name is required for update_profile", index)
		}
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, step.Op)
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertFollowing:
		if a.User == "" || a.Target == "" {
			return fmt.Errorf("assertions[%d]: user and target are required for following", index)
		}
	case AssertUnreadCount, AssertPostCount:
		if a.User == "" {
			return fmt.Errorf("assertions[%d]: user is required for %s", index, a.Type)
		}
	case AssertFeedLength:
		// Count alone.
	case AssertLikes, AssertCommentCount:
		if a.Post == "" {
			return fmt.Errorf("assertions[%d]: post is required for %s", index, a.Type)
		}
	case AssertTrending:
		if len(a.Tags) == 0 {
			return fmt.Errorf("assertions[%d]: tags list is required for trending", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	if a.Count < 0 {
		return fmt.Errorf("assertions[%d]: count must be non-negative", index)
	}

	return nil
}
