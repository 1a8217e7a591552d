package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
)

// ScannerInput reads one decision per line, printing a plain prompt first.
type ScannerInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewScannerInput(r io.Reader, w io.Writer) *ScannerInput {
	return &ScannerInput{scanner: bufio.NewScanner(r), out: w}
}

func (s *ScannerInput) ChooseAction(p Prompt) (string, error) {
	fmt.Fprintf(s.out, "Choose an action (%s): ", joinActions(p.Allowed))
	return s.line()
}

func (s *ScannerInput) ChooseAmount(p Prompt) (string, error) {
	fmt.Fprint(s.out, "Enter the amount: ")
	return s.line()
}

func (s *ScannerInput) line() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

func joinActions(actions []poker.ActionType) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return strings.Join(names, " / ")
}
