package main

import (
	"context"

	"github.com/conorfennell/notehash/internal/bank"
	"github.com/conorfennell/notehash/internal/config"
	"github.com/conorfennell/notehash/internal/logger"
	"github.com/conorfennell/notehash/internal/notes"
	"github.com/conorfennell/notehash/internal/quiz"
	"github.com/conorfennell/notehash/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "notehash",
		Short: "Local notes with a quiz on the side",
		Long: `notehash keeps notes in a local SQLite file and runs a multiple-choice quiz.
Both can be used from the terminal or served as a JSON API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newNoteCmd(a),
		newQuizCmd(a),
		newServeCmd(a),
		newDBCmd(a),
		newHashPasswordCmd(),
	)
	return rootCmd
}

// withStore opens the configured database for the duration of fn.
func (a *app) withStore(ctx context.Context, fn func(db *storage.DB) error) error {
	db, err := storage.Open(ctx, a.cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	a.log.Debug("Database opened", zap.String("path", a.cfg.DB.Path))
	return fn(db)
}

// withNotes opens the database and hands fn a note service over it.
func (a *app) withNotes(ctx context.Context, fn func(svc *notes.Service) error) error {
	return a.withStore(ctx, func(db *storage.DB) error {
		return fn(notes.NewService(db, a.log))
	})
}

// loadEngine builds the quiz engine from the configured question source.
func (a *app) loadEngine(ctx context.Context) (*quiz.Engine, error) {
	loader := bank.NewLoader(a.cfg.Quiz.Checkout, a.cfg.Quiz.Pattern, a.log)
	questions, err := loader.Load(ctx, a.cfg.Quiz.Source)
	if err != nil {
		return nil, err
	}
	return quiz.NewEngine(questions)
}
