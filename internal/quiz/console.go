package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Play runs an interactive quiz on a line-oriented terminal. A number picks
// an option, an empty line moves on, "r" restarts and "q" quits. It returns
// when the user quits or in is exhausted.
func Play(e *Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	s := e.Start()
	for {
		render(e, s, out)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "q":
			return nil
		case line == "r":
			s = e.Restart()
		case s.Completed:
			fmt.Fprintln(out, "Type r to restart or q to quit.")
		case line == "":
			if s.Selected == NoSelection {
				fmt.Fprintln(out, "Select an option first.")
				continue
			}
			s = e.Advance(s)
		default:
			q, _ := e.Current(s)
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintf(out, "Enter a number between 1 and %d.\n", len(q.Options))
				continue
			}
			s = e.SelectOption(s, n-1)
		}
	}
}

func render(e *Engine, s Session, out io.Writer) {
	if s.Completed {
		fmt.Fprintf(out, "\nQuiz Finished!\nYour score: %d/%d\n[r]estart or [q]uit: ", s.Score, s.Total)
		return
	}
	q, _ := e.Current(s)
	fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", s.Index+1, s.Total, q.Text)
	for i, opt := range q.Options {
		mark := " "
		if i == s.Selected {
			mark = "*"
		}
		fmt.Fprintf(out, " %s %d) %s\n", mark, i+1, opt)
	}
	fmt.Fprint(out, "> ")
}
