package tiletap

import "fmt"

// OptionID identifies what a menu option does.
type OptionID int

const (
	OptionPlay OptionID = iota
	OptionExit
)

// String returns the option identity name.
func (id OptionID) String() string {
	switch id {
	case OptionPlay:
		return "play"
	case OptionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Option is one entry of the menu.
type Option struct {
	ID       OptionID
	Label    string
	FontSize int // Includes the emphasis delta while the option is selected
}

// MenuSelector is a cyclic single-selection list. The selected option
// carries the emphasis delta on its font size; no other option does.
type MenuSelector struct {
	options  []Option
	current  int
	emphasis int
}

// NewMenuSelector creates a selector with the first option selected.
func NewMenuSelector(options []Option, emphasisDelta int) (*MenuSelector, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("tiletap: menu without options: %w", ErrInvalidArgument)
	}
	m := &MenuSelector{
		options:  make([]Option, len(options)),
		emphasis: emphasisDelta,
	}
	copy(m.options, options)
	m.options[0].FontSize += emphasisDelta
	return m, nil
}

// DefaultMenu returns the Play/Exit selector shown before a round.
func DefaultMenu(fontSize, emphasisDelta int) *MenuSelector {
	m, _ := NewMenuSelector([]Option{
		{ID: OptionPlay, Label: "Play", FontSize: fontSize},
		{ID: OptionExit, Label: "Exit", FontSize: fontSize},
	}, emphasisDelta)
	return m
}

// Next selects the following option, wrapping to the first.
func (m *MenuSelector) Next() {
	m.moveTo((m.current + 1) % len(m.options))
}

// Previous selects the preceding option, wrapping to the last.
func (m *MenuSelector) Previous() {
	m.moveTo((m.current - 1 + len(m.options)) % len(m.options))
}

func (m *MenuSelector) moveTo(i int) {
	m.options[m.current].FontSize -= m.emphasis
	m.current = i
	m.options[m.current].FontSize += m.emphasis
}

// Current returns the selected option.
func (m *MenuSelector) Current() Option {
	return m.options[m.current]
}

// Index returns the selected position.
func (m *MenuSelector) Index() int {
	return m.current
}

// Activate reports the identity of the selected option for the caller to act on.
func (m *MenuSelector) Activate() OptionID {
	return m.options[m.current].ID
}

// Options returns a copy of all options in display order.
func (m *MenuSelector) Options() []Option {
	out := make([]Option, len(m.options))
	copy(out, m.options)
	return out
}
