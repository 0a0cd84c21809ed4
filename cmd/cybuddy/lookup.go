package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kestrelsec/cybuddy/cli"
)

// runLookup executes a single dispatcher line and prints the result,
// exiting non-zero when the lookup failed.
func runLookup(line string) {
	env, closeLog := buildEnv()
	defer closeLog()

	res := env.disp.Execute(line)
	cli.PrintLines(os.Stdout, res.Lines)
	if res.IsError {
		os.Exit(1)
	}
}

func lookupArgs(slash string, args []string) string {
	return slash + " " + strings.Join(args, " ")
}

var explainCmd = &cobra.Command{
	Use:   "explain <tool>",
	Short: "Explain a security tool",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLookup(lookupArgs("/explain", args))
	},
}

var tipCmd = &cobra.Command{
	Use:   "tip <topic>",
	Short: "Show practical tips for a topic",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLookup(lookupArgs("/tip", args))
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <goal>",
	Short: "Suggest a study plan",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLookup(lookupArgs("/plan", args))
	},
}

var assistCmd = &cobra.Command{
	Use:   "assist <problem>",
	Short: "Troubleshoot a failing tool or technique",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLookup(lookupArgs("/assist", args))
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <kind>",
	Short: "Print a reporting template",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLookup(lookupArgs("/report", args))
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz [topic]",
	Short: "Print a quiz question with its answer",
	Run: func(cmd *cobra.Command, args []string) {
		env, closeLog := buildEnv()
		defer closeLog()

		res := env.disp.Execute(lookupArgs("/quiz", args))
		cli.PrintLines(os.Stdout, res.Lines)
		if res.IsError {
			os.Exit(1)
		}
		// One-shot mode has no follow-up prompt, so reveal immediately.
		ans := env.disp.Execute("answer")
		cli.PrintLines(os.Stdout, ans.Lines)
	},
}

var checklistCmd = &cobra.Command{
	Use:   "checklist <phase>",
	Short: "Print an engagement phase checklist",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLookup(lookupArgs("/checklist", args))
	},
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List everything the knowledge base covers",
	Run: func(cmd *cobra.Command, args []string) {
		runLookup("/topics")
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(assistCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(topicsCmd)
}
