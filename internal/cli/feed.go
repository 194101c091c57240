package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/vibestream/internal/feed"
)

// FeedOptions holds flags for the feed command.
type FeedOptions struct {
	*RootOptions
	Seed   string
	Search string
}

// NewFeedCommand creates the feed command.
func NewFeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Render the feed",
		Long: `Render the feed, most recent post first.

With --search, posts are filtered by a case-insensitive match against
content, author username, and tags.

Examples:
  vibestream feed
  vibestream feed --search sunrise
  vibestream feed --seed fixtures/demo.yaml --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Seed, "seed", "", "path to seed fixture YAML (default: embedded fixture)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "filter posts by content, author, or tag")

	return cmd
}

func runFeed(opts *FeedOptions, cmd *cobra.Command) error {
	st, err := buildStore(opts.Seed)
	if err != nil {
		return err
	}

	posts := st.SearchPosts(opts.Search)

	if opts.Format == "json" {
		return outputJSON(cmd, posts)
	}

	renderPosts(cmd.OutOrStdout(), posts)
	return nil
}

func renderPosts(w io.Writer, posts []feed.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "(no posts)")
		return
	}

	for _, p := range posts {
		fmt.Fprintf(w, "[%s] @%s  %s\n", p.ID, p.Username, p.Timestamp.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "  %s\n", p.Content)
		if p.HasMedia() {
			fmt.Fprintf(w, "  media: %s %s\n", p.MediaType, p.MediaURL)
		}
		fmt.Fprintf(w, "  likes: %d  comments: %d", len(p.Likes), len(p.Comments))
		if len(p.Tags) > 0 {
			fmt.Fprintf(w, "  tags: #%s", strings.Join(p.Tags, " #"))
		}
		fmt.Fprintln(w)
	}
}
