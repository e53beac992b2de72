// Package bank resolves the question set a quiz is played with: the built-in
// animal questions, a local directory of question files, or a git repository
// of them.
package bank

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/conorfennell/notehash/internal/domain"
	"github.com/conorfennell/notehash/internal/gitsource"
	"github.com/conorfennell/notehash/internal/knol"
	"github.com/conorfennell/notehash/internal/parser"
	"github.com/conorfennell/notehash/internal/quiz"
	"github.com/conorfennell/notehash/internal/validate"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultPattern selects the files read from a bank directory.
const DefaultPattern = "**/*.md"

type Loader struct {
	checkoutDir string
	pattern     string
	validate    *validator.Validate
	log         *zap.Logger
}

// NewLoader returns a loader that clones git banks below checkoutDir and
// reads files whose slash-separated relative path matches pattern.
func NewLoader(checkoutDir, pattern string, log *zap.Logger) *Loader {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Loader{
		checkoutDir: checkoutDir,
		pattern:     pattern,
		validate:    validate.New(),
		log:         log,
	}
}

// Load returns the question set named by source. An empty source selects the
// built-in questions; a git URL is cloned or pulled first.
func (l *Loader) Load(ctx context.Context, source string) ([]domain.Question, error) {
	if source == "" {
		l.log.Debug("Using built-in question set")
		return withHashes(quiz.DefaultQuestions()), nil
	}

	dir := source
	if gitsource.IsURL(source) {
		localPath, err := gitsource.LocalPath(l.checkoutDir, source)
		if err != nil {
			return nil, fmt.Errorf("error determining local path for git repo: %w", err)
		}
		if err := gitsource.Sync(ctx, l.log, source, localPath); err != nil {
			return nil, err
		}
		dir = localPath
	}
	return l.LoadDir(dir)
}

// LoadDir parses every matching file below dir in lexical order. Questions
// that hash identically to an earlier one are dropped.
func (l *Loader) LoadDir(dir string) ([]domain.Question, error) {
	var questions []domain.Question
	seen := make(map[string]bool)
	duplicates := 0

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		match, err := doublestar.Match(l.pattern, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", l.pattern, err)
		}
		if !match {
			return nil
		}

		fileQuestions, err := parser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		for i, q := range fileQuestions {
			if err := validate.Struct(l.validate, q); err != nil {
				return fmt.Errorf("%s: question %d: %w", path, i+1, err)
			}
			q.Hash = knol.Hash(q)
			if seen[q.Hash] {
				duplicates++
				continue
			}
			seen[q.Hash] = true
			questions = append(questions, q)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in %s matching %s", dir, l.pattern)
	}

	l.log.Info("Question bank loaded",
		zap.String("path", dir),
		zap.Int("questions", len(questions)),
		zap.Int("duplicates_dropped", duplicates),
	)
	return questions, nil
}

func withHashes(qs []domain.Question) []domain.Question {
	for i := range qs {
		qs[i].Hash = knol.Hash(qs[i])
	}
	return qs
}
