package workspace

// OpenFiles is the ordered, duplicate-free set of files shown as editor
// tabs. Insertion order is display order and decides which tab becomes
// active when the active one is closed.
type OpenFiles struct {
	files []*Node
}

// Add appends f unless a file with the same id is already open.
// Directories are rejected. Reports whether f was appended.
func (o *OpenFiles) Add(f *Node) bool {
	if f == nil || f.IsDir() || o.Contains(f.ID) {
		return false
	}
	o.files = append(o.files, f)
	return true
}

// Remove deletes the file with the given id. Reports whether anything
// was removed.
func (o *OpenFiles) Remove(id string) bool {
	i := o.Index(id)
	if i < 0 {
		return false
	}
	o.files = append(o.files[:i:i], o.files[i+1:]...)
	return true
}

// Index returns the position of id, or -1.
func (o *OpenFiles) Index(id string) int {
	for i, f := range o.files {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is open.
func (o *OpenFiles) Contains(id string) bool {
	return o.Index(id) >= 0
}

// Get returns the open file with the given id, or nil.
func (o *OpenFiles) Get(id string) *Node {
	if i := o.Index(id); i >= 0 {
		return o.files[i]
	}
	return nil
}

// Last returns the most recently opened remaining file, or nil.
func (o *OpenFiles) Last() *Node {
	if len(o.files) == 0 {
		return nil
	}
	return o.files[len(o.files)-1]
}

// Len returns the number of open files.
func (o *OpenFiles) Len() int {
	return len(o.files)
}

// All returns a copy of the open files in tab order.
func (o *OpenFiles) All() []*Node {
	out := make([]*Node, len(o.files))
	copy(out, o.files)
	return out
}

// IDs returns the open file ids in tab order.
func (o *OpenFiles) IDs() []string {
	ids := make([]string, len(o.files))
	for i, f := range o.files {
		ids[i] = f.ID
	}
	return ids
}
