package workspace

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffOp classifies a line of a two-column diff.
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffRemoved
	DiffAdded
	DiffChanged
)

// DiffRow is one row of the side-by-side diff. Line numbers are 1-based;
// 0 means the side has no line in this row.
type DiffRow struct {
	Op        DiffOp
	LeftLine  int
	Left      string
	RightLine int
	Right     string
}

// Diff compares the file's HEAD revision with its working copy. A file
// without a recorded HEAD revision diffs clean against itself.
func Diff(f *Node) []DiffRow {
	if f == nil {
		return nil
	}
	head := f.Original
	if head == "" {
		head = f.Content
	}
	a := strings.Split(head, "\n")
	b := strings.Split(f.Content, "\n")

	var rows []DiffRow
	m := difflib.NewMatcher(a, b)
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				rows = append(rows, DiffRow{
					Op:       DiffEqual,
					LeftLine: op.I1 + k + 1, Left: a[op.I1+k],
					RightLine: op.J1 + k + 1, Right: b[op.J1+k],
				})
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				rows = append(rows, DiffRow{Op: DiffRemoved, LeftLine: i + 1, Left: a[i]})
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				rows = append(rows, DiffRow{Op: DiffAdded, RightLine: j + 1, Right: b[j]})
			}
		case 'r':
			n := max(op.I2-op.I1, op.J2-op.J1)
			for k := 0; k < n; k++ {
				row := DiffRow{Op: DiffChanged}
				if i := op.I1 + k; i < op.I2 {
					row.LeftLine, row.Left = i+1, a[i]
				}
				if j := op.J1 + k; j < op.J2 {
					row.RightLine, row.Right = j+1, b[j]
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// Modified reports whether the working copy differs from HEAD.
func (n *Node) Modified() bool {
	return !n.IsDir() && n.Original != "" && n.Original != n.Content
}

// IsConflictMarker reports whether line is a merge-conflict marker.
func IsConflictMarker(line string) bool {
	for _, p := range []string{"<<<<<<<", "=======", ">>>>>>>"} {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
