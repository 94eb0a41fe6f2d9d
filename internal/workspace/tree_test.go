package workspace

import (
	"reflect"
	"testing"
)

func TestTree_ToggleExpanded_OnlyTargetChanges(t *testing.T) {
	before := sampleTree()
	after := before.ToggleExpanded("src")

	if after == before {
		t.Fatal("expected a new tree when toggling a directory")
	}

	srcBefore := before.Find("src")
	srcAfter := after.Find("src")
	if srcBefore.Expanded == srcAfter.Expanded {
		t.Fatalf("src.Expanded unchanged: %v", srcAfter.Expanded)
	}
	if !srcBefore.Expanded {
		t.Error("original tree was mutated")
	}

	// Siblings are shared, not copied.
	for _, id := range []string{"package-json", "conflict-ts", "app-tsx", "main-tsx"} {
		if before.Find(id) != after.Find(id) {
			t.Errorf("%s should be shared between tree versions", id)
		}
	}

	// The ancestor is a copy whose own fields are unchanged.
	rootBefore, rootAfter := before.Find("root"), after.Find("root")
	if rootBefore == rootAfter {
		t.Error("ancestor should be path-copied")
	}
	if rootAfter.Expanded != rootBefore.Expanded || rootAfter.Name != rootBefore.Name {
		t.Error("ancestor fields changed")
	}
	if len(rootAfter.Children) != len(rootBefore.Children) {
		t.Fatal("ancestor children count changed")
	}
}

func TestTree_ToggleExpanded_Twice(t *testing.T) {
	before := sampleTree()
	after := before.ToggleExpanded("src").ToggleExpanded("src")

	if !reflect.DeepEqual(before.Roots(), after.Roots()) {
		t.Error("toggling twice should restore an equal tree")
	}
}

func TestTree_ToggleExpanded_NoOps(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name string
		id   string
	}{
		{"file id", "app-tsx"},
		{"absent id", "does-not-exist"},
		{"empty id", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tree.ToggleExpanded(tt.id); got != tree {
				t.Error("expected the same tree back")
			}
		})
	}
}

func TestTree_Visible(t *testing.T) {
	tree := sampleTree()

	var got []string
	for _, r := range tree.Visible() {
		got = append(got, r.Node.ID)
	}
	want := []string{"root", "src", "app-tsx", "main-tsx", "package-json", "conflict-ts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Visible() = %v, want %v", got, want)
	}

	collapsed := tree.ToggleExpanded("src").Visible()
	got = got[:0]
	for _, r := range collapsed {
		got = append(got, r.Node.ID)
	}
	want = []string{"root", "src", "package-json", "conflict-ts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Visible() after collapse = %v, want %v", got, want)
	}
}

func TestTree_Visible_Depth(t *testing.T) {
	rows := sampleTree().Visible()
	depths := map[string]int{}
	for _, r := range rows {
		depths[r.Node.ID] = r.Depth
	}
	if depths["root"] != 0 || depths["src"] != 1 || depths["app-tsx"] != 2 || depths["package-json"] != 1 {
		t.Errorf("unexpected depths: %v", depths)
	}
}

func TestTree_Files_IgnoresExpansion(t *testing.T) {
	tree := sampleTree().ToggleExpanded("root")

	got := ids(tree.Files())
	want := []string{"app-tsx", "main-tsx", "package-json", "conflict-ts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
	if len(tree.Visible()) != 1 {
		t.Errorf("collapsed root should show a single row, got %d", len(tree.Visible()))
	}
}

func TestTree_Find(t *testing.T) {
	tree := sampleTree()
	if n := tree.Find("main-tsx"); n == nil || n.Name != "main.tsx" {
		t.Errorf("Find(main-tsx) = %v", n)
	}
	if n := tree.Find("nope"); n != nil {
		t.Errorf("Find(nope) = %v, want nil", n)
	}
}

func TestTree_Search(t *testing.T) {
	tree := sampleTree()

	res := tree.Search("APP")
	if len(res.Files) != 2 {
		t.Fatalf("expected matches in 2 files, got %d", len(res.Files))
	}
	if res.Files[0].File.ID != "app-tsx" || res.Files[1].File.ID != "main-tsx" {
		t.Errorf("unexpected file order: %s, %s", res.Files[0].File.ID, res.Files[1].File.ID)
	}
	if res.Files[0].Matches[0].Line != 3 {
		t.Errorf("first App.tsx match line = %d, want 3", res.Files[0].Matches[0].Line)
	}
	if res.Total() != 2 {
		t.Errorf("Total() = %d, want 2", res.Total())
	}

	if empty := tree.Search(""); len(empty.Files) != 0 {
		t.Error("empty query should not match")
	}
}
