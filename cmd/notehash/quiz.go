package main

import (
	"github.com/conorfennell/notehash/internal/quiz"
	"github.com/spf13/cobra"
)

func newQuizCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Play the quiz in the terminal",
		Long: `Play the quiz one question at a time. Type an option number to select it,
press enter to move on, r to restart and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			return quiz.Play(engine, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
