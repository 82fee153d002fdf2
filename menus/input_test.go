package menus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestIntRepromptsOnGarbage(t *testing.T) {
	p, out := newTestPrompter("abc\n42\n")
	require.Equal(t, 42, p.Int("Enter choice: "))
	require.Contains(t, out.String(), "Invalid input. Please enter a number.")
}

func TestDateRepromptsOnBadFormat(t *testing.T) {
	p, out := newTestPrompter("10-05-2024\n2024-05-10\n")
	require.Equal(t, "2024-05-10", p.Date("Enter date: "))
	require.Contains(t, out.String(), "Invalid date format. Please use YYYY-MM-DD.")
}

func TestFloatRepromptsOnGarbage(t *testing.T) {
	p, _ := newTestPrompter("lots\n150.50\n")
	require.Equal(t, 150.50, p.Float("Amount: "))
}

func TestYesNo(t *testing.T) {
	p, out := newTestPrompter("maybe\nY\n")
	require.True(t, p.YesNo("Continue?"))
	require.Contains(t, out.String(), "Invalid input. Please enter 'y' or 'n'.")

	p, _ = newTestPrompter("n\n")
	require.False(t, p.YesNo("Continue?"))
}

func TestExhaustedInputSetsEOF(t *testing.T) {
	p, _ := newTestPrompter("")
	require.Equal(t, 0, p.Int("Enter choice: "))
	require.True(t, p.EOF())
}
