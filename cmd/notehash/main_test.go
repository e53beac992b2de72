package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestNoteCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "notes.db")

	out, err := execute(t, "", "note", "list", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Empty Notes\n", out)

	out, err = execute(t, "", "note", "add", "Groceries", "Milk, eggs", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Note created: 1\n", out)

	_, err = execute(t, "", "note", "add", "Todo", "Call Bob", "--db", db)
	require.NoError(t, err)

	out, err = execute(t, "", "note", "list", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "2\tTodo\tCall Bob\n1\tGroceries\tMilk, eggs\n", out)

	out, err = execute(t, "", "note", "edit", "1", "Groceries", "Bread", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Note updated\n", out)

	out, err = execute(t, "", "note", "show", "1", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Groceries\n\nBread\n", out)

	out, err = execute(t, "", "note", "rm", "1", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Note deleted\n", out)

	_, err = execute(t, "", "note", "rm", "1", "--db", db)
	assert.EqualError(t, err, "note 1 not found")

	_, err = execute(t, "", "note", "add", "", "empty title", "--db", db)
	assert.Error(t, err)
}

func TestQuizCommand(t *testing.T) {
	answers := []string{"1", "2", "1", "1", "2", "1", "3", "1", "2", "1"}
	var input strings.Builder
	for _, a := range answers {
		input.WriteString(a + "\n\n")
	}
	input.WriteString("q\n")

	out, err := execute(t, input.String(), "quiz")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1/10: What is the largest land animal?")
	assert.Contains(t, out, "Your score: 10/10")
}

func TestDBCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "notes.db")

	out, err := execute(t, "", "db", "version", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "schema version 1 (dirty: false)\n", out)

	_, err = execute(t, "", "db", "reset", "--db", db)
	assert.Error(t, err)

	_, err = execute(t, "", "note", "add", "Todo", "Call Bob", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "", "db", "reset", "--force", "--db", db)
	require.NoError(t, err)

	out, err = execute(t, "", "note", "list", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Empty Notes\n", out)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := execute(t, "", "hash-password", "s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "$2a$"))
}
