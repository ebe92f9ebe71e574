package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/laneboard/internal/board"
	"github.com/jask/laneboard/internal/config"
)

func testApp(t *testing.T) (*App, *board.Store) {
	t.Helper()
	cfg := config.Config{UI: config.UIConfig{ActiveTitle: "Active Projects", FinishedTitle: "Finished Projects"}}
	store := board.NewStore()
	return New(cfg, store, zap.NewNop()), store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyboardDragMovesProjectToFinished(t *testing.T) {
	app, store := testApp(t)
	store.AddProject("A", "ship it", 3)

	app.Update(key("enter")) // pick up
	if app.session == nil {
		t.Fatal("no drag session after pick up")
	}
	app.Update(key("tab"))   // hover the finished lane
	app.Update(key("enter")) // drop

	if app.session != nil {
		t.Fatal("session still live after drop")
	}
	got := store.Projects()
	if got[0].Status != board.StatusFinished {
		t.Fatalf("project status = %v, want %v", got[0].Status, board.StatusFinished)
	}
	if app.focused != 1 {
		t.Errorf("focus = %d, want the drop lane", app.focused)
	}
}

func TestEscCancelsDragWithoutMutation(t *testing.T) {
	app, store := testApp(t)
	store.AddProject("A", "stay put", 1)

	calls := 0
	store.Subscribe(func([]board.Project) { calls++ })

	app.Update(key("enter")) // pick up
	app.Update(key("tab"))   // hover finished
	app.Update(key("esc"))   // cancel

	if app.session != nil {
		t.Fatal("session still live after cancel")
	}
	if calls != 0 {
		t.Errorf("notifications = %d, want 0", calls)
	}
	if got := store.Projects(); got[0].Status != board.StatusActive {
		t.Errorf("project status = %v, want %v", got[0].Status, board.StatusActive)
	}
}

func TestPickUpOnEmptyLaneReportsError(t *testing.T) {
	app, _ := testApp(t)

	app.Update(key("enter"))

	if app.session != nil {
		t.Fatal("session started with nothing selected")
	}
	if !app.statusErr {
		t.Error("expected error status")
	}
}

func TestFormFlowAddsProject(t *testing.T) {
	app, store := testApp(t)

	app.Update(key("a"))
	if app.modal != modalForm {
		t.Fatalf("modal = %q, want %q", app.modal, modalForm)
	}

	typeString(app, "Garden")
	app.Update(key("enter")) // to description
	typeString(app, "plant the beds")
	app.Update(key("enter")) // to people
	typeString(app, "2")
	app.Update(key("enter")) // submit

	if app.modal != modalNone {
		t.Fatalf("modal = %q after submit, want closed", app.modal)
	}
	got := store.Projects()
	if len(got) != 1 {
		t.Fatalf("store len = %d, want 1", len(got))
	}
	if got[0].Title != "Garden" || got[0].People != 2 || got[0].Status != board.StatusActive {
		t.Errorf("stored project = %+v", got[0])
	}
}

func TestFormRejectsInvalidInputAndStaysOpen(t *testing.T) {
	app, store := testApp(t)

	app.Update(key("a"))
	// skip straight to submit with everything empty
	app.Update(key("enter"))
	app.Update(key("enter"))
	app.Update(key("enter"))

	if app.modal != modalForm {
		t.Fatal("form closed despite invalid input")
	}
	if store.Len() != 0 {
		t.Fatalf("store len = %d, want 0", store.Len())
	}
	if app.form.errText == "" {
		t.Error("no validation error shown")
	}
}

func TestFormEscCancelsWithoutAdding(t *testing.T) {
	app, store := testApp(t)

	app.Update(key("a"))
	typeString(app, "Half-typed")
	app.Update(key("esc"))

	if app.modal != modalNone {
		t.Fatal("form still open after esc")
	}
	if store.Len() != 0 {
		t.Fatalf("store len = %d, want 0", store.Len())
	}
}

func TestJumpPickerFocusesProjectLane(t *testing.T) {
	app, store := testApp(t)
	store.AddProject("Alpha", "first", 1)
	b := store.AddProject("Bravo", "second", 1)
	store.MoveProject(b.ID, board.StatusFinished)

	app.Update(key("/"))
	if app.modal != modalPicker {
		t.Fatalf("modal = %q, want %q", app.modal, modalPicker)
	}
	typeString(app, "bra")
	app.Update(key("enter"))

	if app.modal != modalNone {
		t.Fatal("picker still open after selection")
	}
	if app.focused != 1 {
		t.Fatalf("focus = %d, want finished lane", app.focused)
	}
	if got, _ := app.panes[1].Selected(); got.ID != b.ID {
		t.Errorf("selection = %s, want %s", got.ID, b.ID)
	}
}

func TestViewShowsBothLanes(t *testing.T) {
	app, store := testApp(t)
	store.AddProject("Visible", "rendered", 1)
	app.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	out := app.View()
	for _, want := range []string{"Active Projects", "Finished Projects", "Visible"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func typeString(app *App, s string) {
	for _, r := range s {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
