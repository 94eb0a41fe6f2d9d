// Package palette implements the command palette: a fixed catalog of
// commands filtered by a live query, with a wrapping selection cursor.
package palette

import "strings"

// Palette holds the palette's open flag, query and cursor. The zero
// value is unusable; use New.
type Palette struct {
	catalog  []Command
	open     bool
	query    string
	filtered []Command
	cursor   int
}

// New creates a closed palette over catalog.
func New(catalog []Command) *Palette {
	p := &Palette{catalog: catalog}
	p.refilter()
	return p
}

// Open shows the palette with an empty query and the cursor on the first
// command. Queries are not kept between openings.
func (p *Palette) Open() {
	p.open = true
	p.query = ""
	p.cursor = 0
	p.refilter()
}

// IsOpen reports whether the palette is shown.
func (p *Palette) IsOpen() bool { return p.open }

// Query returns the current filter text.
func (p *Palette) Query() string { return p.query }

// Cursor returns the index of the selected command within Filtered.
func (p *Palette) Cursor() int { return p.cursor }

// Filtered returns the commands whose label contains the query,
// case-insensitively.
func (p *Palette) Filtered() []Command { return p.filtered }

// Selected returns the command under the cursor.
func (p *Palette) Selected() (Command, bool) {
	if len(p.filtered) == 0 {
		return Command{}, false
	}
	return p.filtered[p.cursor], true
}

// SetQuery refilters the catalog. The cursor is kept when it still
// points inside the new list, otherwise it returns to the top.
func (p *Palette) SetQuery(q string) {
	p.query = q
	p.refilter()
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
}

// MoveDown advances the cursor, wrapping to the top. No-op on an empty
// list.
func (p *Palette) MoveDown() {
	if n := len(p.filtered); n > 0 {
		p.cursor = (p.cursor + 1) % n
	}
}

// MoveUp moves the cursor back, wrapping to the bottom. No-op on an
// empty list.
func (p *Palette) MoveUp() {
	if n := len(p.filtered); n > 0 {
		p.cursor = (p.cursor - 1 + n) % n
	}
}

// Select closes the palette and returns the chosen command id. With
// nothing to choose it returns false and the palette stays open.
func (p *Palette) Select() (string, bool) {
	cmd, ok := p.Selected()
	if !ok {
		return "", false
	}
	p.open = false
	return cmd.ID, true
}

// Cancel closes the palette without running anything.
func (p *Palette) Cancel() {
	p.open = false
}

func (p *Palette) refilter() {
	q := strings.ToLower(p.query)
	p.filtered = nil
	for _, c := range p.catalog {
		if strings.Contains(strings.ToLower(c.Label), q) {
			p.filtered = append(p.filtered, c)
		}
	}
}
