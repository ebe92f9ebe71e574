package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/laneboard/internal/validate"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldPeople
	fieldCount
)

// formResult is a validated submission ready for the store.
type formResult struct {
	title       string
	description string
	people      int
}

// projectForm collects and validates new-project input. Invalid input never
// leaves the form, so the store can trust everything it is handed.
type projectForm struct {
	inputs   [fieldCount]textinput.Model
	focus    int
	errText  string
	warnText string
	existing []string
}

func newProjectForm(existing []string) *projectForm {
	f := &projectForm{existing: existing}

	title := textinput.New()
	title.Placeholder = "Project title"
	title.CharLimit = 60
	title.Prompt = "> "
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "Short description"
	desc.CharLimit = 120
	desc.Prompt = "> "

	people := textinput.New()
	people.Placeholder = "1"
	people.CharLimit = 3
	people.Prompt = "> "

	f.inputs[fieldTitle] = title
	f.inputs[fieldDescription] = desc
	f.inputs[fieldPeople] = people
	return f
}

// Update routes a message into the form. It returns a non-nil result once a
// submission passes validation, and done=true when the form should close
// (submit or cancel).
func (f *projectForm) Update(msg tea.Msg) (*formResult, bool, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return nil, true, nil
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return nil, false, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return nil, false, nil
		case "enter":
			if f.focus < fieldPeople {
				f.setFocus(f.focus + 1)
				return nil, false, nil
			}
			res, err := f.submit()
			if err != nil {
				f.errText = err.Error()
				return nil, false, nil
			}
			return res, true, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.errText = ""
	f.refreshWarning()
	return nil, false, cmd
}

func (f *projectForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *projectForm) submit() (*formResult, error) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	desc := strings.TrimSpace(f.inputs[fieldDescription].Value())
	people := strings.TrimSpace(f.inputs[fieldPeople].Value())

	err := validate.All(
		validate.Field{Name: "title", Value: title, Required: true, MaxLen: 60},
		validate.Field{Name: "description", Value: desc, Required: true, MinLen: 5, MaxLen: 120},
		validate.Field{Name: "people", Value: people, Required: true, Numeric: true, Min: 1, Max: 99},
	)
	if err != nil {
		return nil, err
	}

	n, _ := strconv.Atoi(people)
	return &formResult{title: title, description: desc, people: n}, nil
}

// refreshWarning flags a title that is nearly identical to an existing
// project. A warning never blocks submission.
func (f *projectForm) refreshWarning() {
	f.warnText = ""
	if other, ok := similarTitle(f.inputs[fieldTitle].Value(), f.existing); ok {
		f.warnText = fmt.Sprintf("similar to existing project %q", other)
	}
}

// similarTitle reports the first existing title within a 0.4 normalized
// levenshtein distance of the candidate.
func similarTitle(title string, existing []string) (string, bool) {
	t := strings.ToUpper(strings.TrimSpace(title))
	if t == "" {
		return "", false
	}
	for _, other := range existing {
		o := strings.ToUpper(strings.TrimSpace(other))
		if o == "" {
			continue
		}
		dist := levenshtein.ComputeDistance(t, o)
		maxlen := len(t)
		if len(o) > maxlen {
			maxlen = len(o)
		}
		if float64(dist)/float64(maxlen) < 0.4 {
			return other, true
		}
	}
	return "", false
}

func (f *projectForm) View(width int) string {
	labels := [fieldCount]string{"Title", "Description", "People"}
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("New Project"))
	b.WriteString("\n\n")
	for i := range f.inputs {
		b.WriteString(helpDescStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	if f.warnText != "" {
		b.WriteString("\n" + modalWarnStyle.Render("⚠ "+f.warnText))
	}
	if f.errText != "" {
		b.WriteString("\n" + modalErrStyle.Render("✗ "+f.errText))
	}
	b.WriteString("\n\n" + helpDescStyle.Render("enter submit · tab next · esc cancel"))

	return pane{Title: "Add Project", Content: b.String(), Focused: true}.
		Render(min(width-4, 64), fieldCount*3+8)
}
