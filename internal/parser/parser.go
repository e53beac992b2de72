package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/conorfennell/notehash/internal/domain"
)

const (
	questionPrefix = "Q:"
	optionPrefix   = "O:"
	answerPrefix   = "A:"
	separator      = "---"
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingOptions
)

// ParseFile reads a file from the given path and extracts all questions.
func ParseFile(path string) ([]domain.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads from an io.Reader and extracts all questions.
//
// A question starts with "Q:" and may continue over the following lines.
// Each "O:" line adds one option, and "A:" gives the 1-based number of the
// correct option. "---" or the next "Q:" ends a question. Shape checks such
// as the option count are left to the caller.
func Parse(r io.Reader) ([]domain.Question, error) {
	scanner := bufio.NewScanner(r)
	var questions []domain.Question
	var current domain.Question
	var textBlock []string
	answerSet := false
	currentState := seeking
	lineNo := 0

	flushText := func() {
		if len(textBlock) > 0 {
			current.Text = strings.Join(textBlock, "\n")
			textBlock = nil
		}
	}

	finishQuestion := func() error {
		flushText()
		if current.Text != "" {
			if !answerSet {
				return fmt.Errorf("line %d: question %q has no answer", lineNo, current.Text)
			}
			questions = append(questions, current)
		}
		current = domain.Question{}
		answerSet = false
		currentState = seeking
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.TrimSpace(line) == separator:
			if err := finishQuestion(); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, questionPrefix):
			if err := finishQuestion(); err != nil {
				return nil, err
			}
			currentState = readingQuestion
			textBlock = append(textBlock, strings.TrimSpace(strings.TrimPrefix(line, questionPrefix)))

		case strings.HasPrefix(line, optionPrefix):
			if currentState == seeking {
				return nil, fmt.Errorf("line %d: option outside of a question", lineNo)
			}
			flushText()
			currentState = readingOptions
			current.Options = append(current.Options, strings.TrimSpace(strings.TrimPrefix(line, optionPrefix)))

		case strings.HasPrefix(line, answerPrefix):
			if currentState == seeking {
				return nil, fmt.Errorf("line %d: answer outside of a question", lineNo)
			}
			flushText()
			raw := strings.TrimSpace(strings.TrimPrefix(line, answerPrefix))
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: answer %q is not an option number", lineNo, raw)
			}
			current.CorrectAnswer = n - 1
			answerSet = true
			currentState = readingOptions

		case currentState == readingQuestion:
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				textBlock = append(textBlock, trimmed)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := finishQuestion(); err != nil {
		return nil, err
	}
	return questions, nil
}
