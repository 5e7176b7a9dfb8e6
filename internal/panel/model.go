package panel

// Model tracks the rows and which one has focus.
type Model struct {
	Rows     []Row
	Selected int // -1 when nothing is focused
	Visible  bool
}

func NewModel() *Model {
	return &Model{Rows: Rows(), Selected: -1, Visible: true}
}

// Select focuses row i if it is editable.
func (m *Model) Select(i int) bool {
	if i < 0 || i >= len(m.Rows) || m.Rows[i].Kind == KindHeading {
		return false
	}
	m.Selected = i
	return true
}

// Move shifts focus by delta editable rows, wrapping at either end.
func (m *Model) Move(delta int) {
	if delta == 0 || len(m.Rows) == 0 {
		return
	}
	dir := 1
	if delta < 0 {
		dir, delta = -1, -delta
	}
	i := m.Selected
	if i < 0 && dir < 0 {
		i = 0
	}
	for moved := 0; moved < delta; {
		for tries := 0; tries < len(m.Rows); tries++ {
			i = (i + dir + len(m.Rows)) % len(m.Rows)
			if m.Rows[i].Kind != KindHeading {
				break
			}
		}
		moved++
	}
	if m.Rows[i].Kind != KindHeading {
		m.Selected = i
	}
}

// Current returns the focused row.
func (m *Model) Current() (Row, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Rows) {
		return Row{}, false
	}
	return m.Rows[m.Selected], true
}

// Editing reports whether a text row has focus, so plain keys are typed
// instead of being treated as shortcuts.
func (m *Model) Editing() bool {
	r, ok := m.Current()
	return ok && r.Kind == KindText
}
