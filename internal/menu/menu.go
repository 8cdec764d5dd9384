package menu

import (
	"errors"
	"fmt"
	"io"
)

// Option is a single numbered menu entry. Run performs the action and
// returns an error for conditions the user should be told about.
type Option struct {
	Key   string
	Label string
	Run   func() error
}

// Menu is a looping numbered text menu. Every iteration prints the title
// and options, reads a choice, and dispatches. Action errors are printed
// and the loop continues; only the exit option (or end of input) stops it.
type Menu struct {
	Title    string
	Options  []Option
	ExitKey  string
	Farewell string

	// ChoicePrompt is the label shown when asking for a selection.
	// Empty means "Enter your choice".
	ChoicePrompt string
}

// Run drives the menu loop until the exit option is chosen. Reaching end
// of input is treated as exit so piped input terminates cleanly.
func (m *Menu) Run(p *Prompter) error {
	out := p.Out()
	for {
		fmt.Fprintf(out, "\n%s\n", titleStyle.Render(m.Title))
		for _, opt := range m.Options {
			fmt.Fprintf(out, "%s. %s\n", opt.Key, opt.Label)
		}
		fmt.Fprintf(out, "%s. Exit\n", m.ExitKey)

		prompt := m.ChoicePrompt
		if prompt == "" {
			prompt = "Enter your choice"
		}
		choice, err := p.ReadString(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == m.ExitKey {
			fmt.Fprintln(out, m.Farewell)
			return nil
		}

		opt, ok := m.lookup(choice)
		if !ok {
			fmt.Fprintln(out, Error("Invalid choice, please try again."))
			continue
		}

		if err := opt.Run(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(out, Error(fmt.Sprintf("Error: %v", err)))
		}
	}
}

func (m *Menu) lookup(key string) (Option, bool) {
	for _, opt := range m.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}
