package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/vibestream/internal/feed"
)

// TrendingOptions holds flags for the trending command.
type TrendingOptions struct {
	*RootOptions
	Seed  string
	Limit int
}

// NewTrendingCommand creates the trending command.
func NewTrendingCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TrendingOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending tags",
		Long: `Show the most frequent hashtags across the feed.

Tags are ranked by occurrence count; ties keep feed-scan order.

Examples:
  vibestream trending
  vibestream trending --limit 3 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrending(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Seed, "seed", "", "path to seed fixture YAML (default: embedded fixture)")
	cmd.Flags().IntVar(&opts.Limit, "limit", feed.DefaultTrendingLimit, "maximum number of tags")

	return cmd
}

func runTrending(opts *TrendingOptions, cmd *cobra.Command) error {
	st, err := buildStore(opts.Seed)
	if err != nil {
		return err
	}

	tags := st.TrendingTags(opts.Limit)

	if opts.Format == "json" {
		return outputJSON(cmd, tags)
	}

	w := cmd.OutOrStdout()
	if len(tags) == 0 {
		fmt.Fprintln(w, "(no tags)")
		return nil
	}
	for _, tc := range tags {
		fmt.Fprintf(w, "#%s  %d\n", tc.Tag, tc.Count)
	}
	return nil
}
