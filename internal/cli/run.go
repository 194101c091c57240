package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/vibestream/internal/harness"
)

// RunResult is the run command's JSON payload.
type RunResult struct {
	Pass     bool             `json:"pass"`
	Errors   []string         `json:"errors,omitempty"`
	Snapshot harness.Snapshot `json:"snapshot"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a scenario file",
		Long: `Execute a scenario file against a fresh seeded store.

The scenario's steps run in order with a deterministic clock and id
generator, then its assertions are checked against the final state.
The trace and final snapshot are printed; assertion failures exit
with code 1.

Examples:
  vibestream run scenarios/like-and-comment.yaml
  vibestream run scenarios/like-and-comment.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScenario(opts *RootOptions, path string, cmd *cobra.Command) error {
	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	result, err := harness.Run(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	snapshot := harness.BuildSnapshot(scenario.Name, result)

	if opts.Format == "json" {
		if err := outputJSON(cmd, RunResult{
			Pass:     result.Pass,
			Errors:   result.Errors,
			Snapshot: snapshot,
		}); err != nil {
			return err
		}
	} else {
		outputRunText(cmd, result, snapshot)
	}

	if !result.Pass {
		return NewExitError(ExitFailure, fmt.Sprintf("%d assertion(s) failed", len(result.Errors)))
	}
	return nil
}

func outputRunText(cmd *cobra.Command, result *harness.Result, snapshot harness.Snapshot) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Scenario: %s\n", snapshot.ScenarioName)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Trace ===")
	for i, event := range snapshot.Trace {
		fmt.Fprintf(w, "  [%d] %s as @%s", i+1, event.Op, event.Actor)
		if event.Post != "" {
			fmt.Fprintf(w, " on %s", event.Post)
		}
		if event.User != "" {
			fmt.Fprintf(w, " -> @%s", event.User)
		}
		fmt.Fprintf(w, ": %s\n", event.Outcome)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Final state ===")
	fmt.Fprintf(w, "  Posts in feed: %d\n", snapshot.FeedLength)
	if len(snapshot.Notifications) == 0 {
		fmt.Fprintln(w, "  Notifications: (none)")
	} else {
		fmt.Fprintln(w, "  Notifications:")
		for _, n := range snapshot.Notifications {
			read := "unread"
			if n.Read {
				read = "read"
			}
			fmt.Fprintf(w, "    %s -> @%s from @%s (%s)\n", n.Type, n.Recipient, n.Actor, read)
		}
	}
	fmt.Fprintln(w)

	if result.Pass {
		fmt.Fprintln(w, "PASS")
	} else {
		fmt.Fprintln(w, "FAIL")
		for _, msg := range result.Errors {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	}
}
