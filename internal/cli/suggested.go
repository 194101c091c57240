package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/vibestream/internal/feed"
)

// SuggestedOptions holds flags for the suggested command.
type SuggestedOptions struct {
	*RootOptions
	Seed  string
	As    string
	Limit int
}

// NewSuggestedCommand creates the suggested command.
func NewSuggestedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SuggestedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "suggested",
		Short: "Show follow suggestions for a user",
		Long: `Show users the given user might follow: everyone except
themselves and the users they already follow, in store order.

Examples:
  vibestream suggested --as alex_vibes
  vibestream suggested --as alex_vibes --limit 2 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggested(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Seed, "seed", "", "path to seed fixture YAML (default: embedded fixture)")
	cmd.Flags().StringVar(&opts.As, "as", "", "username to suggest for (required)")
	_ = cmd.MarkFlagRequired("as")
	cmd.Flags().IntVar(&opts.Limit, "limit", feed.DefaultSuggestionLimit, "maximum number of suggestions")

	return cmd
}

func runSuggested(opts *SuggestedOptions, cmd *cobra.Command) error {
	st, err := buildStore(opts.Seed)
	if err != nil {
		return err
	}

	user, err := st.UserByUsername(opts.As)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown user", err)
	}

	suggestions, err := st.SuggestedUsers(user.ID, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build suggestions", err)
	}

	if opts.Format == "json" {
		return outputJSON(cmd, suggestions)
	}

	w := cmd.OutOrStdout()
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "(no suggestions)")
		return nil
	}
	for _, u := range suggestions {
		fmt.Fprintf(w, "@%s  %s\n", u.Username, u.DisplayName)
	}
	return nil
}
