package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/vibestream/internal/enhance"
)

// SuggestCommentOptions holds flags for the suggest-comment command.
type SuggestCommentOptions struct {
	*RootOptions
	Seed string

	// Client allows overriding the enhancement client (for testing).
	// If nil, defaults to enhance.NewClient().
	Client *enhance.Client
}

// SuggestCommentResult is the suggest-comment command's payload.
type SuggestCommentResult struct {
	PostID    string `json:"post_id"`
	Comment   string `json:"comment"`
	Generated bool   `json:"generated"`
}

// NewSuggestCommentCommand creates the suggest-comment command.
func NewSuggestCommentCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SuggestCommentOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "suggest-comment <post-id>",
		Short: "Suggest a comment for a post with AI",
		Long: `Ask the generation API for a short comment reacting to a post.

Requires the ` + enhance.EnvAPIKey + ` environment variable. The call is
best-effort: on any failure a fixed fallback comment is returned.

Examples:
  vibestream suggest-comment post_1
  vibestream suggest-comment post_1 --seed fixtures/demo.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggestComment(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Seed, "seed", "", "path to seed fixture YAML (default: embedded fixture)")

	return cmd
}

func runSuggestComment(opts *SuggestCommentOptions, postID string, cmd *cobra.Command) error {
	st, err := buildStore(opts.Seed)
	if err != nil {
		return err
	}

	post, err := st.PostByID(postID)
	if err != nil {
		return WrapExitError(ExitCommandError, "unknown post", err)
	}

	client := opts.Client
	if client == nil {
		client = enhance.NewClient()
	}

	// Use the command's context if available (for testing), otherwise create one.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := SuggestCommentResult{PostID: post.ID}
	comment, err := client.SuggestComment(ctx, post.Content)
	if err != nil {
		// Best-effort: fall back to the stock comment.
		slog.Warn("comment suggestion failed, using fallback", "error", err)
		result.Comment = enhance.FallbackComment
	} else {
		result.Comment = comment
		result.Generated = true
	}

	if opts.Format == "json" {
		return outputJSON(cmd, result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Comment)
	return nil
}
