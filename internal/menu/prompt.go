package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when a prompt expected a numeric value
// but the user typed something else.
var ErrInvalidNumber = errors.New("invalid input, please enter a numeric value")

// Prompter reads line-oriented answers from an input stream and echoes
// the prompt labels to an output stream.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) Out() io.Writer {
	return p.out
}

// ReadString prompts with the given label and returns the trimmed answer.
// Returns io.EOF once the input stream is exhausted.
func (p *Prompter) ReadString(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *Prompter) ReadInt(label string) (int, error) {
	answer, err := p.ReadString(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return value, nil
}

func (p *Prompter) ReadFloat(label string) (float64, error) {
	answer, err := p.ReadString(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return value, nil
}

// ReadOptionalInt returns nil when the answer is blank or not a number.
func (p *Prompter) ReadOptionalInt(label string) (*int, error) {
	answer, err := p.ReadString(label)
	if err != nil {
		return nil, err
	}
	value, err := strconv.Atoi(answer)
	if err != nil {
		return nil, nil
	}
	return &value, nil
}

// ReadOptionalFloat returns nil when the answer is blank or not a number.
func (p *Prompter) ReadOptionalFloat(label string) (*float64, error) {
	answer, err := p.ReadString(label)
	if err != nil {
		return nil, err
	}
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return nil, nil
	}
	return &value, nil
}
