package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type choice struct {
	label string
	value string
}

// formField is either a text input or, when options is non-nil, a choice
// cycled with the arrow keys.
type formField struct {
	label    string
	input    textinput.Model
	options  []choice
	selected int
}

func (f formField) isChoice() bool {
	return f.options != nil
}

// formModel is the input table shared by every create and edit screen.
type formModel struct {
	fields     []formField
	focus      int
	submitting bool
}

func newTextInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func textField(label, placeholder string, secret bool) formField {
	return formField{label: label, input: newTextInput(placeholder, secret)}
}

func choiceField(label string, options []choice) formField {
	if options == nil {
		options = []choice{}
	}
	return formField{label: label, options: options}
}

func newForm(fields ...formField) formModel {
	f := formModel{fields: fields}
	f.focusField(0)
	return f
}

func (f *formModel) focusField(i int) {
	if f.focus < len(f.fields) {
		f.fields[f.focus].input.Blur()
	}
	f.focus = i
	if !f.fields[i].isChoice() {
		f.fields[i].input.Focus()
	}
}

func (f *formModel) focusNext() {
	f.focusField((f.focus + 1) % len(f.fields))
}

func (f *formModel) focusPrev() {
	f.focusField((f.focus - 1 + len(f.fields)) % len(f.fields))
}

// update handles focus movement and editing. changed reports that a choice
// field moved to another option.
func (f *formModel) update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.focusNext()
			return nil, false
		case key.Matches(keyMsg, keys.backtab):
			f.focusPrev()
			return nil, false
		}

		field := &f.fields[f.focus]
		if field.isChoice() && len(field.options) > 0 {
			switch {
			case key.Matches(keyMsg, keys.left):
				field.selected = (field.selected - 1 + len(field.options)) % len(field.options)
				return nil, true
			case key.Matches(keyMsg, keys.right):
				field.selected = (field.selected + 1) % len(field.options)
				return nil, true
			}
		}
	}

	if f.fields[f.focus].isChoice() {
		return nil, false
	}
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd, false
}

func (f *formModel) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *formModel) setValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

// choiceValue returns the selected option of field i, or "" when it has none.
func (f *formModel) choiceValue(i int) string {
	field := f.fields[i]
	if field.selected < 0 || field.selected >= len(field.options) {
		return ""
	}
	return field.options[field.selected].value
}

// selectValue selects the option holding v, if present.
func (f *formModel) selectValue(i int, v string) {
	for j, o := range f.fields[i].options {
		if o.value == v {
			f.fields[i].selected = j
			return
		}
	}
}

// setOptions replaces the options of field i, keeping the selection when the
// selected value is still offered.
func (f *formModel) setOptions(i int, options []choice) {
	current := f.choiceValue(i)
	if options == nil {
		options = []choice{}
	}
	f.fields[i].options = options
	f.fields[i].selected = 0
	f.selectValue(i, current)
}

func (f *formModel) View(submitLabel string) string {
	labelWidth := lipgloss.Width("Field")
	for _, field := range f.fields {
		labelWidth = max(labelWidth, lipgloss.Width(field.label))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ %s\n", labelWidth, "Field", "Value"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for i, field := range f.fields {
		var value string
		if field.isChoice() {
			value = choiceView(field, i == f.focus)
		} else {
			value = "[" + field.input.View() + "]"
		}
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", labelWidth, field.label, value))
	}

	if f.submitting {
		b.WriteString("\n[" + submitLabel + "...]")
	} else {
		b.WriteString("\n[" + submitLabel + "]")
	}
	return b.String()
}

func choiceView(field formField, focused bool) string {
	if len(field.options) == 0 {
		return "(none)"
	}
	label := field.options[field.selected].label
	if focused {
		return selectedStyle.Render("‹ " + label + " ›")
	}
	return "  " + label
}
