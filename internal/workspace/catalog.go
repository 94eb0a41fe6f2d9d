package workspace

// Extension is a marketplace entry.
type Extension struct {
	ID          string
	Name        string
	Publisher   string
	Description string
	Version     string
	Installs    string
	Rating      float64
	Icon        string
	Installed   bool
}

// Severity is the level of a Problem.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Problem is a diagnostic listed in the problems panel.
type Problem struct {
	ID       string
	File     string
	Line     int
	Col      int
	Message  string
	Severity Severity
}

// CountProblems returns the number of errors and warnings.
func CountProblems(problems []Problem) (errors, warnings int) {
	for _, p := range problems {
		switch p.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// Menu is one top-level entry of the menu bar.
type Menu struct {
	Title string
	Items []string
}
