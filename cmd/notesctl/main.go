package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "notesctl",
		Short: "CLI client for the notes service REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Notes service base URL")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, _ := cmd.Flags().GetString("query")
			tags, _ := cmd.Flags().GetStringSlice("tag")
			archived, _ := cmd.Flags().GetString("archived")
			done, _ := cmd.Flags().GetString("done")
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")
			return runList(apiFlag, q, tags, archived, done, limit, offset, os.Stdout)
		},
	}
	listCmd.Flags().StringP("query", "q", "", "Free-text search over title and content")
	listCmd.Flags().StringSliceP("tag", "t", nil, "Tag filter (repeatable)")
	listCmd.Flags().String("archived", "", "Filter by archive status (true|false)")
	listCmd.Flags().String("done", "", "Filter by done status (true|false)")
	listCmd.Flags().IntP("limit", "l", -1, "Page size")
	listCmd.Flags().IntP("offset", "o", -1, "Page offset")
	rootCmd.AddCommand(listCmd)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			content, _ := cmd.Flags().GetString("content")
			tags, _ := cmd.Flags().GetStringSlice("tag")
			due, _ := cmd.Flags().GetString("due")
			return runCreate(apiFlag, title, content, tags, due, os.Stdout)
		},
	}
	createCmd.Flags().String("title", "", "Note title (required)")
	createCmd.Flags().String("content", "", "Note content (required)")
	createCmd.Flags().StringSliceP("tag", "t", nil, "Tag (repeatable)")
	createCmd.Flags().String("due", "", "Due date (ISO-8601)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id> <json>",
		Short: "Apply a partial update from a raw JSON payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runUpdate(apiFlag, id, args[1], os.Stdout)
		},
	}
	rootCmd.AddCommand(updateCmd)

	rootCmd.AddCommand(idCommand("get", "Fetch a note by id", runGet))
	rootCmd.AddCommand(idCommand("delete", "Delete a note", runDelete))
	rootCmd.AddCommand(idCommand("archive", "Archive a note", toggleRunner("archive")))
	rootCmd.AddCommand(idCommand("unarchive", "Unarchive a note", toggleRunner("unarchive")))
	rootCmd.AddCommand(idCommand("done", "Mark a note done", toggleRunner("done")))
	rootCmd.AddCommand(idCommand("undone", "Mark a note not done", toggleRunner("undone")))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// idCommand builds a single-id-argument subcommand.
func idCommand(use, short string, run func(api string, id int64, out io.Writer) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(apiFlag, id, os.Stdout)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
