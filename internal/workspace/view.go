package workspace

// ViewKind identifies which variant of View is active.
type ViewKind int

const (
	ViewWelcome ViewKind = iota
	ViewEditor
	ViewSettings
	ViewExtension
	ViewDiff
)

// String returns a human-readable name for the view kind
func (k ViewKind) String() string {
	switch k {
	case ViewWelcome:
		return "welcome"
	case ViewEditor:
		return "editor"
	case ViewSettings:
		return "settings"
	case ViewExtension:
		return "extension-detail"
	case ViewDiff:
		return "diff"
	default:
		return "unknown"
	}
}

// View is what the main content area shows. It is a closed union: the
// unexported marker method restricts implementations to this package,
// so exactly one variant exists at a time and every switch over it can
// be exhaustive.
type View interface {
	view()
	Kind() ViewKind
}

// WelcomeView is shown when no file is open.
type WelcomeView struct{}

// EditorView shows the contents of File.
type EditorView struct {
	File *Node
}

// SettingsView shows the settings screen.
type SettingsView struct{}

// ExtensionView shows the marketplace page of Extension.
type ExtensionView struct {
	Extension Extension
}

// DiffView compares File against its HEAD revision.
type DiffView struct {
	File *Node
}

func (WelcomeView) view()   {}
func (EditorView) view()    {}
func (SettingsView) view()  {}
func (ExtensionView) view() {}
func (DiffView) view()      {}

func (WelcomeView) Kind() ViewKind   { return ViewWelcome }
func (EditorView) Kind() ViewKind    { return ViewEditor }
func (SettingsView) Kind() ViewKind  { return ViewSettings }
func (ExtensionView) Kind() ViewKind { return ViewExtension }
func (DiffView) Kind() ViewKind      { return ViewDiff }

// viewFile returns the file a view is bound to, or nil.
func viewFile(v View) *Node {
	switch v := v.(type) {
	case EditorView:
		return v.File
	case DiffView:
		return v.File
	default:
		return nil
	}
}
