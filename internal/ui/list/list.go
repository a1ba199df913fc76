// Package list provides a generic scrollable list component.
package list

// ScrollMargin is the number of items kept visible above and below the
// cursor.
const ScrollMargin = 3

// Model is a scrollable list with a cursor. The parent renders the rows
// returned by VisibleRange.
type Model[T any] struct {
	items  []T
	pos    int // cursor position
	offset int // first visible item
	height int // visible rows
	margin int
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{margin: margin}
}

// SetItems replaces all items and clamps the cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.clamp()
}

// SetHeight sets the number of visible rows.
func (m *Model[T]) SetHeight(height int) {
	m.height = max(height, 0)
	m.ensureVisible()
}

// Height returns the number of visible rows.
func (m Model[T]) Height() int {
	return m.height
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false if the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if m.pos >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.pos], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.pos
}

// Move moves the cursor by delta, clamped to the list.
func (m *Model[T]) Move(delta int) {
	m.Select(m.pos + delta)
}

// Select moves the cursor to index, clamped to the list.
func (m *Model[T]) Select(index int) {
	if len(m.items) == 0 {
		return
	}
	m.pos = min(max(index, 0), len(m.items)-1)
	m.ensureVisible()
}

// JumpStart moves the cursor to the first item.
func (m *Model[T]) JumpStart() {
	m.pos = 0
	m.offset = 0
}

// JumpEnd moves the cursor to the last item.
func (m *Model[T]) JumpEnd() {
	m.Select(len(m.items) - 1)
}

// VisibleRange returns the [start, end) indices to render.
func (m Model[T]) VisibleRange() (start, end int) {
	if len(m.items) == 0 || m.height <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+m.height, len(m.items))
}

func (m *Model[T]) clamp() {
	if len(m.items) == 0 {
		m.pos, m.offset = 0, 0
		return
	}
	m.pos = min(m.pos, len(m.items)-1)
	m.ensureVisible()
}

func (m *Model[T]) ensureVisible() {
	if m.height <= 0 || len(m.items) == 0 {
		return
	}
	margin := min(m.margin, (m.height-1)/2)

	// Scroll up: cursor too close to top
	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	// Scroll down: cursor too close to bottom
	if m.pos >= m.offset+m.height-margin {
		m.offset = m.pos - m.height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.items)-m.height, 0))
}
