package workspace

import (
	"reflect"
	"testing"
)

func TestOpenFiles(t *testing.T) {
	a := &Node{ID: "a", Kind: KindFile}
	b := &Node{ID: "b", Kind: KindFile}
	dir := &Node{ID: "d", Kind: KindDirectory}

	var o OpenFiles
	if o.Last() != nil {
		t.Error("Last() of empty set should be nil")
	}
	if !o.Add(a) || !o.Add(b) {
		t.Fatal("adds should succeed")
	}
	if o.Add(a) {
		t.Error("duplicate add should be rejected")
	}
	if o.Add(dir) {
		t.Error("directories cannot be opened")
	}
	if o.Add(nil) {
		t.Error("nil cannot be opened")
	}
	if got := o.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("IDs() = %v", got)
	}
	if o.Last() != b || o.Get("a") != a || o.Index("b") != 1 {
		t.Error("accessors disagree with insertion order")
	}

	all := o.All()
	all[0] = nil
	if o.Get("a") == nil {
		t.Error("All() must return a copy")
	}

	if o.Remove("zzz") {
		t.Error("removing an absent id should report false")
	}
	if !o.Remove("a") || o.Len() != 1 || o.Contains("a") {
		t.Error("remove failed")
	}
}
