package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/ocean-notes/internal/note"
	"github.com/marcus/ocean-notes/internal/notesync"
)

var (
	listJSON  bool
	listQuery string
)

// withController loads config, opens the stores and runs fn against a
// loaded controller. Diagnostics go to the command's error stream.
func withController(cmd *cobra.Command, fn func(ctx context.Context, ctrl *notesync.Controller) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cmd.ErrOrStderr())

	client, closeStore, err := openClient(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	ctrl := notesync.New(client, notesync.WithLogger(logger))
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	if !client.IsRemote() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Offline mode: using local store")
	}
	return fn(ctx, ctrl)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctx context.Context, ctrl *notesync.Controller) error {
			out := cmd.OutOrStdout()
			notes := ctrl.Filter(listQuery)
			if listJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(notes)
			}
			for _, n := range notes {
				fmt.Fprintf(out, "%s  %s\n", n.ID, note.TruncateWidth(n.DisplayTitle(), 60))
			}
			return nil
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title> [content]",
	Short: "Create a note",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := note.Input{Title: args[0]}
		if len(args) == 2 {
			in.Content = args[1]
		}
		in = in.Normalize()
		if err := in.Validate(); err != nil {
			return err
		}
		return withController(cmd, func(ctx context.Context, ctrl *notesync.Controller) error {
			if err := ctrl.Create(ctx, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ctrl.Notes()[0].ID)
			return nil
		})
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		return withController(cmd, func(ctx context.Context, ctrl *notesync.Controller) error {
			if note.IndexOf(ctrl.Notes(), id) < 0 {
				return fmt.Errorf("no note with id %q", id)
			}
			if err := ctrl.Delete(ctx, id); err != nil {
				return err
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd, addCmd, rmCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "only notes whose title or content contains the query")
}
