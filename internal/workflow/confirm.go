package workflow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"watchsweep/internal/arr"
)

// Confirmer asks the operator a yes/no question. The deletion workflow
// depends on this port so tests and scripted runs can swap in a
// non-interactive implementation.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// TerminalConfirmer reads answers line by line from an input stream
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalConfirmer wires the confirmer to stdin/stdout. A warning is
// logged when stdin is not a terminal, because every prompt will then
// read from piped input instead of the operator.
func NewTerminalConfirmer(logger arr.Logger) *TerminalConfirmer {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		logger.Warn("stdin is not a terminal; confirmation prompts will read from piped input")
	}
	return &TerminalConfirmer{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Confirm prints the prompt and accepts "y" or "yes", case insensitive.
// Anything else, including an empty line, declines.
func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
