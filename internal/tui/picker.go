package tui

import (
	"sort"
	"strings"

	"github.com/jask/laneboard/internal/board"
)

// pickerItem is one jump-picker row.
type pickerItem struct {
	id    string
	label string
	lane  string
}

// jumpPicker filters projects by a typed query and jumps the board cursor
// to the selected one.
type jumpPicker struct {
	items    []pickerItem
	filtered []pickerItem
	query    string
	cursor   int
}

func newJumpPicker(projects []board.Project) *jumpPicker {
	items := make([]pickerItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, pickerItem{id: p.ID, label: p.Title, lane: p.Status.String()})
	}
	jp := &jumpPicker{items: items}
	jp.rebuild()
	return jp
}

// HandleKey consumes one key press. It returns the chosen item once the
// user confirms, and done=true when the picker should close.
func (jp *jumpPicker) HandleKey(keyName string) (*pickerItem, bool) {
	switch keyName {
	case "esc":
		return nil, true
	case "up", "ctrl+k":
		if jp.cursor > 0 {
			jp.cursor--
		}
	case "down", "ctrl+j":
		if jp.cursor < len(jp.filtered)-1 {
			jp.cursor++
		}
	case "enter":
		if len(jp.filtered) == 0 {
			return nil, false
		}
		item := jp.filtered[jp.cursor]
		return &item, true
	case "backspace":
		if len(jp.query) > 0 {
			jp.query = jp.query[:len(jp.query)-1]
			jp.rebuild()
		}
	default:
		if len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127 {
			jp.query += keyName
			jp.rebuild()
		}
	}
	return nil, false
}

type scoredItem struct {
	item  pickerItem
	score int
	index int
}

func (jp *jumpPicker) rebuild() {
	scored := make([]scoredItem, 0, len(jp.items))
	for idx, item := range jp.items {
		ok, score := fuzzyScore(item.label, jp.query)
		if !ok {
			continue
		}
		scored = append(scored, scoredItem{item: item, score: score, index: idx})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	jp.filtered = jp.filtered[:0]
	for _, s := range scored {
		jp.filtered = append(jp.filtered, s.item)
	}
	if jp.cursor > len(jp.filtered)-1 {
		jp.cursor = len(jp.filtered) - 1
	}
	if jp.cursor < 0 {
		jp.cursor = 0
	}
}

// fuzzyScore matches query as a subsequence of label. Prefix matches and
// adjacent runs score higher; an exact match beats everything.
func fuzzyScore(label, query string) (bool, int) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true, 0
	}
	l := strings.ToLower(label)

	prev := -2
	score := len(q)
	from := 0
	for i := 0; i < len(q); i++ {
		j := strings.IndexByte(l[from:], q[i])
		if j < 0 {
			return false, 0
		}
		j += from
		if j == 0 {
			score += 10
		}
		if j == prev+1 {
			score += 3
		}
		prev = j
		from = j + 1
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func (jp *jumpPicker) View(width int) string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Jump to project"))
	b.WriteString("\n\n> " + jp.query + "▍\n\n")
	if len(jp.filtered) == 0 {
		b.WriteString(helpDescStyle.Render("  no matches"))
	}
	for i, item := range jp.filtered {
		marker := "  "
		style := cardStyle
		if i == jp.cursor {
			marker = "▸ "
			style = cardCursorStyle
		}
		b.WriteString(marker + style.Render(item.label) + cardMetaStyle.Render(" ["+item.lane+"]"))
		if i < len(jp.filtered)-1 {
			b.WriteString("\n")
		}
	}

	h := len(jp.filtered) + 8
	if h > 20 {
		h = 20
	}
	return pane{Title: "Jump", Content: b.String(), Focused: true}.
		Render(min(width-4, 56), h)
}
