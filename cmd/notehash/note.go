package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/conorfennell/notehash/internal/domain"
	"github.com/conorfennell/notehash/internal/notes"
	"github.com/spf13/cobra"
)

func newNoteCmd(a *app) *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Create, list, edit and delete notes",
	}

	var listJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(svc *notes.Service) error {
				list, err := svc.Load(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if listJSON {
					encoder := json.NewEncoder(out)
					encoder.SetIndent("", "  ")
					return encoder.Encode(list)
				}
				if len(list) == 0 {
					fmt.Fprintln(out, "Empty Notes")
					return nil
				}
				for _, n := range list {
					fmt.Fprintf(out, "%d\t%s\t%s\n", n.ID, n.Title, n.Content)
				}
				return nil
			})
		},
	}
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	addCmd := &cobra.Command{
		Use:   "add TITLE CONTENT",
		Short: "Create a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(svc *notes.Service) error {
				id, err := svc.Create(cmd.Context(), domain.NoteInput{Title: args[0], Content: args[1]})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Note created: %d\n", id)
				return nil
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a single note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withNotes(cmd.Context(), func(svc *notes.Service) error {
				n, err := svc.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", n.Title, n.Content)
				return nil
			})
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit ID TITLE CONTENT",
		Short: "Replace a note's title and content",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withNotes(cmd.Context(), func(svc *notes.Service) error {
				return report(cmd, id, "updated", func(ctx context.Context) (bool, error) {
					return svc.Update(ctx, id, domain.NoteInput{Title: args[1], Content: args[2]})
				})
			})
		},
	}

	rmCmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withNotes(cmd.Context(), func(svc *notes.Service) error {
				return report(cmd, id, "deleted", func(ctx context.Context) (bool, error) {
					return svc.Delete(ctx, id)
				})
			})
		},
	}

	noteCmd.AddCommand(listCmd, addCmd, showCmd, editCmd, rmCmd)
	return noteCmd
}

// report runs a mutation and turns a false result into a not-found error.
func report(cmd *cobra.Command, id int64, verb string, fn func(ctx context.Context) (bool, error)) error {
	ok, err := fn(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("note %d not found", id)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Note %s\n", verb)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", s)
	}
	return id, nil
}
