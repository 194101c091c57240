// Package seed loads feed fixtures: the users and posts a store starts
// with. Fixtures are YAML documents validated against an embedded CUE
// schema before they are decoded, so malformed seed data fails loudly at
// the boundary instead of corrupting the store.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/vibestream/internal/feed"
)

//go:embed schema.cue
var schemaCUE string

//go:embed default.yaml
var defaultYAML []byte

// Document is a parsed seed fixture.
type Document struct {
	Users []UserSeed `yaml:"users"`
	Posts []PostSeed `yaml:"posts"`
}

// UserSeed mirrors feed.User in fixture form.
type UserSeed struct {
	ID          string   `yaml:"id"`
	Username    string   `yaml:"username"`
	DisplayName string   `yaml:"display_name"`
	Avatar      string   `yaml:"avatar"`
	Bio         string   `yaml:"bio"`
	Followers   []string `yaml:"followers"`
	Following   []string `yaml:"following"`
}

// PostSeed mirrors feed.Post in fixture form. Timestamps are RFC3339.
type PostSeed struct {
	ID         string        `yaml:"id"`
	UserID     string        `yaml:"user_id"`
	Username   string        `yaml:"username"`
	UserAvatar string        `yaml:"user_avatar"`
	Content    string        `yaml:"content"`
	MediaURL   string        `yaml:"media_url"`
	MediaType  string        `yaml:"media_type"`
	Likes      []string      `yaml:"likes"`
	Comments   []CommentSeed `yaml:"comments"`
	Tags       []string      `yaml:"tags"`
	Timestamp  string        `yaml:"timestamp"`
}

// CommentSeed mirrors feed.Comment in fixture form.
type CommentSeed struct {
	ID        string `yaml:"id"`
	UserID    string `yaml:"user_id"`
	Username  string `yaml:"username"`
	Text      string `yaml:"text"`
	Timestamp string `yaml:"timestamp"`
}

// Parse validates raw YAML against the seed schema and decodes it.
//
// Validation happens on the generic YAML value first: the CUE schema
// rejects missing required fields, unknown media types and malformed
// shapes with positions, which beats zero-valued structs silently passing
// through. Decoding then rejects unknown fields (typo protection).
func Parse(data []byte) (*Document, error) {
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parse seed YAML: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Seed"))
	if !def.Exists() {
		return nil, fmt.Errorf("seed schema is missing the #Seed definition")
	}

	unified := def.Unify(ctx.Encode(generic))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("seed does not satisfy schema: %w", err)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a seed fixture file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded three-user fixture.
func Default() *Document {
	doc, err := Parse(defaultYAML)
	if err != nil {
		// The embedded fixture is validated by tests; failing here means
		// the binary itself is broken.
		panic(fmt.Sprintf("embedded default seed is invalid: %v", err))
	}
	return doc
}

// Entities converts the fixture into feed entities.
func (d *Document) Entities() ([]feed.User, []feed.Post, error) {
	users := make([]feed.User, 0, len(d.Users))
	for _, u := range d.Users {
		users = append(users, feed.User{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Avatar:      u.Avatar,
			Bio:         u.Bio,
			Followers:   append([]string{}, u.Followers...),
			Following:   append([]string{}, u.Following...),
		})
	}

	posts := make([]feed.Post, 0, len(d.Posts))
	for _, p := range d.Posts {
		ts, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			return nil, nil, fmt.Errorf("post %s: bad timestamp: %w", p.ID, err)
		}
		comments := make([]feed.Comment, 0, len(p.Comments))
		for _, c := range p.Comments {
			cts, err := time.Parse(time.RFC3339, c.Timestamp)
			if err != nil {
				return nil, nil, fmt.Errorf("comment %s: bad timestamp: %w", c.ID, err)
			}
			comments = append(comments, feed.Comment{
				ID:        c.ID,
				UserID:    c.UserID,
				Username:  c.Username,
				Text:      c.Text,
				Timestamp: cts,
			})
		}
		posts = append(posts, feed.Post{
			ID:         p.ID,
			UserID:     p.UserID,
			Username:   p.Username,
			UserAvatar: p.UserAvatar,
			Content:    p.Content,
			MediaURL:   p.MediaURL,
			MediaType:  feed.MediaType(p.MediaType),
			Likes:      append([]string{}, p.Likes...),
			Comments:   comments,
			Tags:       append([]string{}, p.Tags...),
			Timestamp:  ts,
		})
	}
	return users, posts, nil
}

// Apply seeds a store with the fixture's entities. The store performs its
// own invariant checks (follow symmetry, referential integrity) on top of
// the schema validation done here.
func (d *Document) Apply(s *feed.Store) error {
	users, posts, err := d.Entities()
	if err != nil {
		return err
	}
	return s.Seed(users, posts)
}
