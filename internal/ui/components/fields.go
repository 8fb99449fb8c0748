package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"studylog/internal/ui/theme"
)

// Fields is an ordered group of text inputs with one focused at a time.
type Fields struct {
	inputs []textinput.Model
	labels []string
	digits []bool
	focus  int
}

type FieldSpec struct {
	Label       string
	Placeholder string
	Password    bool
	Digits      bool
	CharLimit   int
}

func NewFields(specs ...FieldSpec) Fields {
	f := Fields{}
	for _, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		ti.Prompt = ""
		ti.CharLimit = spec.CharLimit
		if ti.CharLimit == 0 {
			ti.CharLimit = 120
		}
		if spec.Password {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.inputs = append(f.inputs, ti)
		f.labels = append(f.labels, spec.Label)
		f.digits = append(f.digits, spec.Digits)
	}
	return f
}

func onlyDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Focus focuses the field at i and blurs the rest.
func (f *Fields) Focus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	if i < 0 {
		i = len(f.inputs) - 1
	}
	f.focus = i % len(f.inputs)
	var cmd tea.Cmd
	for idx := range f.inputs {
		if idx == f.focus {
			cmd = f.inputs[idx].Focus()
		} else {
			f.inputs[idx].Blur()
		}
	}
	return cmd
}

func (f *Fields) Next() tea.Cmd { return f.Focus(f.focus + 1) }
func (f *Fields) Prev() tea.Cmd { return f.Focus(f.focus - 1) }

func (f Fields) Focused() int { return f.focus }
func (f Fields) Len() int     { return len(f.inputs) }
func (f Fields) Last() bool   { return f.focus == len(f.inputs)-1 }

// Blur unfocuses every input while keeping the focus index.
func (f *Fields) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f Fields) Value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].Value()
}

func (f *Fields) SetValue(i int, v string) {
	if i < 0 || i >= len(f.inputs) {
		return
	}
	f.inputs[i].SetValue(v)
}

// Reset clears every value and focuses the first field.
func (f *Fields) Reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	return f.Focus(0)
}

// Update forwards msg to the focused input only. Digit fields drop other runes.
func (f Fields) Update(msg tea.Msg) (Fields, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && f.digits[f.focus] && key.Type == tea.KeyRunes && !onlyDigits(key.Runes) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f Fields) View() string {
	var sb strings.Builder
	for i, in := range f.inputs {
		label := theme.Label.Render(f.labels[i])
		if i == f.focus {
			label = theme.Label.Foreground(theme.Peach).Render(f.labels[i])
		}
		sb.WriteString(label + " " + in.View() + "\n")
	}
	return sb.String()
}
