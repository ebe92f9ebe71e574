package tui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/laneboard/internal/board"
	"github.com/jask/laneboard/internal/dnd"
)

// LanePane shows one lane of the board. It is both a drag source and a drop
// target: a card picked up here carries its project id, and a card dropped
// here moves its project into this pane's lane.
type LanePane struct {
	title     string
	status    board.Status
	store     *board.Store
	logger    *zap.Logger
	projects  []board.Project
	cursor    int
	droppable bool
}

var (
	_ dnd.Draggable  = (*LanePane)(nil)
	_ dnd.DropTarget = (*LanePane)(nil)
)

// NewLanePane builds the pane and subscribes it to the store. The closure
// captures the pane by reference, so every notification re-derives this
// lane's view from the full snapshot.
func NewLanePane(title string, status board.Status, store *board.Store, logger *zap.Logger) *LanePane {
	p := &LanePane{title: title, status: status, store: store, logger: logger}
	store.Subscribe(func(projects []board.Project) {
		p.refresh(projects)
	})
	p.refresh(store.Projects())
	return p
}

func (p *LanePane) refresh(projects []board.Project) {
	filtered := make([]board.Project, 0, len(projects))
	for _, proj := range projects {
		if proj.Status == p.status {
			filtered = append(filtered, proj)
		}
	}
	p.projects = filtered
	if p.cursor > len(p.projects)-1 {
		p.cursor = len(p.projects) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *LanePane) Title() string        { return p.title }
func (p *LanePane) Status() board.Status { return p.status }
func (p *LanePane) Len() int             { return len(p.projects) }
func (p *LanePane) Droppable() bool      { return p.droppable }

// Selected returns the project under the cursor.
func (p *LanePane) Selected() (board.Project, bool) {
	if len(p.projects) == 0 {
		return board.Project{}, false
	}
	return p.projects[p.cursor], true
}

func (p *LanePane) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *LanePane) CursorDown() {
	if p.cursor < len(p.projects)-1 {
		p.cursor++
	}
}

// CursorTo places the cursor on the project with the given id, reporting
// whether this pane holds it.
func (p *LanePane) CursorTo(id string) bool {
	for i, proj := range p.projects {
		if proj.ID == id {
			p.cursor = i
			return true
		}
	}
	return false
}

// OnDragStart fixes the selected project's id as the session payload under
// the well-known token and declares the move effect.
func (p *LanePane) OnDragStart(s *dnd.Session) {
	proj, ok := p.Selected()
	if !ok {
		return
	}
	if s.Start(dnd.Payload{ContentType: dnd.ContentTypeProjectID, Value: proj.ID}, dnd.EffectMove) {
		p.logger.Debug("drag started",
			zap.String("project_id", proj.ID),
			zap.String("lane", p.status.String()))
	}
}

// OnDragEnd clears any leftover hover state on the source pane.
func (p *LanePane) OnDragEnd(s *dnd.Session) {
	p.droppable = false
	p.logger.Debug("drag ended", zap.String("state", s.State().String()))
}

// OnDragOver accepts the session only when its payload carries a project
// id; acceptance turns on the droppable highlight.
func (p *LanePane) OnDragOver(s *dnd.Session) bool {
	if !s.Accept(dnd.ContentTypeProjectID) {
		p.droppable = false
		return false
	}
	p.droppable = true
	return true
}

// OnDrop extracts the project id and moves it into this pane's lane. A
// session that no target accepted never reaches the store.
func (p *LanePane) OnDrop(s *dnd.Session) {
	payload, ok := s.Drop()
	p.droppable = false
	if !ok {
		return
	}
	p.logger.Info("project dropped",
		zap.String("project_id", payload.Value),
		zap.String("lane", p.status.String()))
	p.store.MoveProject(payload.Value, p.status)
}

// OnDragLeave exits the droppable state when the drag hovers elsewhere.
func (p *LanePane) OnDragLeave(s *dnd.Session) {
	s.Leave()
	p.droppable = false
}

// View renders the pane. dragID marks the card currently being dragged;
// the cursor only shows on the focused pane.
func (p *LanePane) View(width, height int, focused bool, dragID string) string {
	lines := make([]string, 0, len(p.projects))
	for i, proj := range p.projects {
		marker := "  "
		style := cardStyle
		if focused && i == p.cursor {
			marker = "▸ "
			style = cardCursorStyle
		}
		if proj.ID == dragID {
			marker = "◆ "
			style = cardDragStyle
		}
		meta := cardMetaStyle.Render(fmt.Sprintf(" · %d %s", proj.People, pluralPeople(proj.People)))
		lines = append(lines, marker+style.Render(proj.Title)+meta)
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = cardMetaStyle.Render("  (empty)")
	}
	return pane{
		Title:     fmt.Sprintf("%s (%d)", p.title, len(p.projects)),
		Content:   content,
		Focused:   focused,
		Droppable: p.droppable,
	}.Render(width, height)
}

func pluralPeople(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}
