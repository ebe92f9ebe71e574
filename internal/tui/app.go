// Package tui is the view layer over the board store: two lane panes, a
// new-project form, and the keyboard drag gesture that moves a card
// between lanes through the dnd session protocol.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/laneboard/internal/board"
	"github.com/jask/laneboard/internal/config"
	"github.com/jask/laneboard/internal/dnd"
)

type modalState string

const (
	modalNone   modalState = ""
	modalForm   modalState = "form"
	modalPicker modalState = "picker"
)

// App is the root model. The store is handed in by main and shared with
// both panes; the app itself never mutates project data outside the drag
// protocol and the form submission path.
type App struct {
	cfg    config.Config
	store  *board.Store
	logger *zap.Logger

	panes   [2]*LanePane
	focused int

	// one drag gesture at a time
	session  *dnd.Session
	dragFrom int
	hover    int
	dragID   string

	modal  modalState
	form   *projectForm
	picker *jumpPicker

	status    string
	statusErr bool
	width     int
	height    int
}

// New wires the app. Both panes subscribe to the store here, so their
// views follow every mutation for the life of the program.
func New(cfg config.Config, store *board.Store, logger *zap.Logger) *App {
	applyAccent(cfg.UI.AccentColor)
	a := &App{
		cfg:    cfg,
		store:  store,
		logger: logger,
		status: "Ready",
		width:  100,
		height: 32,
	}
	a.panes[0] = NewLanePane(cfg.UI.ActiveTitle, board.StatusActive, store, logger)
	a.panes[1] = NewLanePane(cfg.UI.FinishedTitle, board.StatusFinished, store, logger)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.modal {
		case modalForm:
			return a.updateForm(msg)
		case modalPicker:
			return a.updatePicker(m)
		}
		return a.handleBoardKey(m)
	}

	if a.modal == modalForm {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a *App) handleBoardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.session != nil {
		switch m.String() {
		case "tab", "left", "right", "h", "l":
			a.hoverLane(1 - a.hover)
		case "enter", " ":
			a.drop()
		case "esc":
			a.cancelDrag()
		}
		return a, nil
	}

	switch m.String() {
	case "q":
		return a, tea.Quit
	case "tab", "left", "right", "h", "l":
		a.focused = 1 - a.focused
	case "up", "k":
		a.panes[a.focused].CursorUp()
	case "down", "j":
		a.panes[a.focused].CursorDown()
	case "enter", " ":
		a.startDrag()
	case "a":
		a.form = newProjectForm(a.projectTitles())
		a.modal = modalForm
	case "/":
		a.picker = newJumpPicker(a.store.Projects())
		a.modal = modalPicker
	}
	return a, nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	res, done, cmd := a.form.Update(msg)
	if res != nil {
		p := a.store.AddProject(res.title, res.description, res.people)
		a.logger.Info("project added", zap.String("project_id", p.ID), zap.String("title", p.Title))
		a.setStatus("Added: " + p.Title)
		a.focused = 0
		a.panes[0].CursorTo(p.ID)
	}
	if done {
		a.form = nil
		a.modal = modalNone
	}
	return a, cmd
}

func (a *App) updatePicker(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, done := a.picker.HandleKey(m.String())
	if item != nil {
		a.jumpTo(item.id)
	}
	if done {
		a.picker = nil
		a.modal = modalNone
	}
	return a, nil
}

func (a *App) jumpTo(id string) {
	for i, pane := range a.panes {
		if pane.CursorTo(id) {
			a.focused = i
			a.setStatus("Jumped to " + pane.Title())
			return
		}
	}
}

func (a *App) projectTitles() []string {
	projects := a.store.Projects()
	titles := make([]string, 0, len(projects))
	for _, p := range projects {
		titles = append(titles, p.Title)
	}
	return titles
}

// startDrag asks the focused pane to begin a session for its selected
// card. The source lane is also the first hover target; dropping straight
// back onto it is a store-level no-op.
func (a *App) startDrag() {
	pane := a.panes[a.focused]
	proj, ok := pane.Selected()
	if !ok {
		a.setError("Nothing to move in " + pane.Title())
		return
	}
	session := dnd.NewSession()
	pane.OnDragStart(session)
	if session.State() != dnd.StateDragging {
		return
	}
	a.session = session
	a.dragFrom = a.focused
	a.hover = a.focused
	a.dragID = proj.ID
	pane.OnDragOver(session)
	a.setStatus("Moving: " + proj.Title + " (tab: switch lane, enter: drop, esc: cancel)")
}

func (a *App) hoverLane(idx int) {
	if idx == a.hover {
		return
	}
	a.panes[a.hover].OnDragLeave(a.session)
	a.hover = idx
	a.panes[a.hover].OnDragOver(a.session)
}

func (a *App) drop() {
	target := a.panes[a.hover]
	target.OnDrop(a.session)
	if a.session.State() == dnd.StateDropped {
		a.focused = a.hover
		target.CursorTo(a.dragID)
		a.setStatus("Moved to " + target.Title())
	} else {
		// the hovered target never accepted this session
		a.session.Cancel()
		a.setError("Drop rejected")
	}
	a.panes[a.dragFrom].OnDragEnd(a.session)
	a.endDrag()
}

func (a *App) cancelDrag() {
	a.session.Cancel()
	a.panes[a.hover].OnDragLeave(a.session)
	a.panes[a.dragFrom].OnDragEnd(a.session)
	a.setStatus("Move cancelled")
	a.endDrag()
}

func (a *App) endDrag() {
	a.session = nil
	a.dragID = ""
	a.hover = 0
	a.dragFrom = 0
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

func (a *App) View() string {
	header := headerStyle.Render(" laneboard ")

	body := ""
	switch a.modal {
	case modalForm:
		body = lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, a.form.View(a.width))
	case modalPicker:
		body = lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, a.picker.View(a.width))
	default:
		paneWidth := (a.width - 1) / 2
		paneHeight := a.height - 4
		left := a.panes[0].View(paneWidth, paneHeight, a.focused == 0, a.dragID)
		right := a.panes[1].View(paneWidth, paneHeight, a.focused == 1, a.dragID)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	}

	statusStyle := statusBarStyle
	if a.statusErr {
		statusStyle = statusErrStyle
	}

	help := strings.Join([]string{
		keyStyle.Render("a") + helpDescStyle.Render(" add"),
		keyStyle.Render("enter") + helpDescStyle.Render(" pick up/drop"),
		keyStyle.Render("tab") + helpDescStyle.Render(" lane"),
		keyStyle.Render("/") + helpDescStyle.Render(" jump"),
		keyStyle.Render("q") + helpDescStyle.Render(" quit"),
	}, "  ")

	return header + "\n" + body + "\n" + statusStyle.Render(a.status) + "\n" + help
}
