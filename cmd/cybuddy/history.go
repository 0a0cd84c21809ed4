package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past session input",
	Run: func(cmd *cobra.Command, args []string) {
		env, closeLog := buildEnv()
		defer closeLog()

		store := openHistory(env)
		if store == nil {
			fmt.Fprintln(os.Stderr, "history unavailable")
			os.Exit(1)
		}
		for _, entry := range store.Entries() {
			fmt.Println(entry)
		}
	},
}

var historySearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search past session input",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, closeLog := buildEnv()
		defer closeLog()

		store := openHistory(env)
		if store == nil {
			fmt.Fprintln(os.Stderr, "history unavailable")
			os.Exit(1)
		}
		for _, entry := range store.Search(strings.Join(args, " ")) {
			fmt.Println(entry)
		}
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved history",
	Run: func(cmd *cobra.Command, args []string) {
		env, closeLog := buildEnv()
		defer closeLog()

		store := openHistory(env)
		if store == nil {
			fmt.Fprintln(os.Stderr, "history unavailable")
			os.Exit(1)
		}
		if err := store.Clear(); err != nil {
			fmt.Fprintln(os.Stderr, "clear failed:", err)
			os.Exit(1)
		}
		fmt.Println("history cleared")
	},
}

func init() {
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
