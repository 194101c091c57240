package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/vibestream/internal/enhance"
	"github.com/roach88/vibestream/internal/feed"
)

// EnhanceOptions holds flags for the enhance command.
type EnhanceOptions struct {
	*RootOptions
	Image string

	// Client allows overriding the enhancement client (for testing).
	// If nil, defaults to enhance.NewClient().
	Client *enhance.Client
}

// EnhanceResult is the enhance command's payload.
type EnhanceResult struct {
	Caption  string   `json:"caption"`
	Tags     []string `json:"tags"`
	Enhanced bool     `json:"enhanced"`
}

// NewEnhanceCommand creates the enhance command.
func NewEnhanceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EnhanceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "enhance <draft>",
		Short: "Enhance a post caption with AI",
		Long: `Ask the generation API to rewrite a draft caption and suggest tags.

Requires the ` + enhance.EnvAPIKey + ` environment variable. The call is
best-effort: on any failure the draft is kept unchanged and its own
hashtags are used.

Examples:
  vibestream enhance "sunrise over the city"
  vibestream enhance "new desk setup" --image desk.jpg`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnhance(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Image, "image", "", "path to an image to caption alongside the draft")

	return cmd
}

func runEnhance(opts *EnhanceOptions, draft string, cmd *cobra.Command) error {
	if strings.TrimSpace(draft) == "" {
		return NewExitError(ExitCommandError, "draft must not be empty")
	}

	var image *enhance.ImageAttachment
	if opts.Image != "" {
		data, err := os.ReadFile(opts.Image)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read image", err)
		}
		image = &enhance.ImageAttachment{
			MimeType: mimeTypeForImage(opts.Image),
			Data:     data,
		}
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

	result := EnhanceResult{Caption: draft, Tags: feed.ExtractTags(draft)}
	enhanced, err := client.EnhancePost(ctx, draft, image)
	if err != nil {
		// Best-effort: keep the draft and move on.
		slog.Warn("enhancement failed, keeping draft", "error", err)
	} else {
		result = EnhanceResult{Caption: enhanced.Caption, Tags: enhanced.Tags, Enhanced: true}
	}

	if opts.Format == "json" {
		return outputJSON(cmd, result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, result.Caption)
	if len(result.Tags) > 0 {
		fmt.Fprintf(w, "tags: #%s\n", strings.Join(result.Tags, " #"))
	}
	return nil
}

// mimeTypeForImage guesses a mime type from the file extension.
func mimeTypeForImage(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
