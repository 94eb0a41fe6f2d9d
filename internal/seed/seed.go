// Package seed loads the static workspace content: the file tree,
// extension catalog, problem list, menus and panel text. The default
// seed is embedded; a YAML file with the same shape can replace it.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/facade/internal/errors"
	"github.com/zhubert/facade/internal/logger"
	"github.com/zhubert/facade/internal/workspace"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded seed document.
func DefaultYAML() []byte {
	return defaultYAML
}

// File is a node of the seeded file tree.
type File struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Language string `yaml:"language,omitempty"`
	Content  string `yaml:"content,omitempty"`
	Original string `yaml:"original,omitempty"`
	Expanded bool   `yaml:"expanded,omitempty"`
	Children []File `yaml:"children,omitempty"`
}

// Extension is a marketplace entry.
type Extension struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Publisher   string  `yaml:"publisher"`
	Description string  `yaml:"description"`
	Version     string  `yaml:"version"`
	Installs    string  `yaml:"installs"`
	Rating      float64 `yaml:"rating"`
	Icon        string  `yaml:"icon"`
	Installed   bool    `yaml:"installed"`
}

// Problem is a diagnostic entry.
type Problem struct {
	ID       string `yaml:"id"`
	File     string `yaml:"file"`
	Line     int    `yaml:"line"`
	Col      int    `yaml:"col"`
	Message  string `yaml:"message"`
	Severity string `yaml:"severity"`
}

// Menu is a menu bar entry.
type Menu struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Data is a whole seed document.
type Data struct {
	Branch       string      `yaml:"branch"`
	Files        []File      `yaml:"files"`
	Extensions   []Extension `yaml:"extensions"`
	Problems     []Problem   `yaml:"problems"`
	Menus        []Menu      `yaml:"menus"`
	Terminal     []string    `yaml:"terminal"`
	Output       []string    `yaml:"output"`
	DebugConsole []string    `yaml:"debug_console"`
}

// Default parses the embedded seed. It panics if the embedded document
// is broken, which the package tests rule out.
func Default() *Data {
	d, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return d
}

// Load reads and validates a seed file. An empty path returns Default.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SeedLoadFailed(path, err)
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, errors.SeedLoadFailed(path, err)
	}
	logger.WithComponent("seed").Info("loaded seed", "path", path,
		"extensions", len(d.Extensions), "problems", len(d.Problems))
	return d, nil
}

// Parse decodes and validates a seed document.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, errors.E(errors.Op("seed.Parse"), errors.KindSeed, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that ids are present and unique, kinds are known,
// files have no children and severities are known.
func (d *Data) Validate() error {
	if len(d.Files) == 0 {
		return errors.SeedInvalid("seed has no files")
	}
	seen := map[string]bool{}
	var check func(f File) error
	check = func(f File) error {
		if f.ID == "" {
			return errors.SeedInvalid(fmt.Sprintf("node %q has no id", f.Name))
		}
		if seen[f.ID] {
			return errors.SeedInvalid(fmt.Sprintf("duplicate node id %q", f.ID))
		}
		seen[f.ID] = true
		switch f.Kind {
		case "file":
			if len(f.Children) > 0 {
				return errors.SeedInvalid(fmt.Sprintf("file %q has children", f.ID))
			}
		case "directory":
			for _, c := range f.Children {
				if err := check(c); err != nil {
					return err
				}
			}
		default:
			return errors.SeedInvalid(fmt.Sprintf("node %q has unknown kind %q", f.ID, f.Kind))
		}
		return nil
	}
	for _, f := range d.Files {
		if err := check(f); err != nil {
			return err
		}
	}

	exts := map[string]bool{}
	for _, e := range d.Extensions {
		if e.ID == "" || exts[e.ID] {
			return errors.SeedInvalid(fmt.Sprintf("extension id %q is empty or duplicated", e.ID))
		}
		exts[e.ID] = true
	}
	for _, p := range d.Problems {
		if _, err := parseSeverity(p.Severity); err != nil {
			return err
		}
	}
	return nil
}

// Tree builds the workspace file tree.
func (d *Data) Tree() *workspace.Tree {
	roots := make([]*workspace.Node, len(d.Files))
	for i, f := range d.Files {
		roots[i] = f.node()
	}
	return workspace.NewTree(roots...)
}

func (f File) node() *workspace.Node {
	n := &workspace.Node{
		ID:       f.ID,
		Name:     f.Name,
		Kind:     workspace.KindFile,
		Language: f.Language,
		Content:  f.Content,
		Original: f.Original,
		Expanded: f.Expanded,
	}
	if f.Kind == "directory" {
		n.Kind = workspace.KindDirectory
		n.Children = make([]*workspace.Node, len(f.Children))
		for i, c := range f.Children {
			n.Children[i] = c.node()
		}
	}
	return n
}

// ExtensionCatalog returns the extensions as workspace values.
func (d *Data) ExtensionCatalog() []workspace.Extension {
	out := make([]workspace.Extension, len(d.Extensions))
	for i, e := range d.Extensions {
		out[i] = workspace.Extension{
			ID:          e.ID,
			Name:        e.Name,
			Publisher:   e.Publisher,
			Description: e.Description,
			Version:     e.Version,
			Installs:    e.Installs,
			Rating:      e.Rating,
			Icon:        e.Icon,
			Installed:   e.Installed,
		}
	}
	return out
}

// ProblemList returns the problems as workspace values.
func (d *Data) ProblemList() []workspace.Problem {
	out := make([]workspace.Problem, 0, len(d.Problems))
	for _, p := range d.Problems {
		sev, _ := parseSeverity(p.Severity)
		out = append(out, workspace.Problem{
			ID:       p.ID,
			File:     p.File,
			Line:     p.Line,
			Col:      p.Col,
			Message:  p.Message,
			Severity: sev,
		})
	}
	return out
}

// MenuBar returns the menus as workspace values.
func (d *Data) MenuBar() []workspace.Menu {
	out := make([]workspace.Menu, len(d.Menus))
	for i, m := range d.Menus {
		out[i] = workspace.Menu{Title: m.Title, Items: append([]string(nil), m.Items...)}
	}
	return out
}

func parseSeverity(s string) (workspace.Severity, error) {
	switch s {
	case "error":
		return workspace.SeverityError, nil
	case "warning":
		return workspace.SeverityWarning, nil
	case "info":
		return workspace.SeverityInfo, nil
	}
	return 0, errors.SeedInvalid(fmt.Sprintf("unknown problem severity %q", s))
}
