package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/facade/internal/notification"
)

func TestRenderToasts(t *testing.T) {
	if RenderToasts(nil) != "" {
		t.Error("no notifications should render nothing")
	}

	live := []notification.Notification{
		{ID: "1", Message: "first", Kind: notification.Info},
		{ID: "2", Message: "broken", Kind: notification.Error},
	}
	view := stripANSI(RenderToasts(live))
	if !strings.Contains(view, "ⓘ first") || !strings.Contains(view, "⊗ broken") {
		t.Errorf("unexpected toasts:\n%s", view)
	}
	if strings.Index(view, "first") > strings.Index(view, "broken") {
		t.Error("toasts should keep push order")
	}
}

func TestRenderToasts_CapsVisible(t *testing.T) {
	var live []notification.Notification
	for _, msg := range []string{"n1", "n2", "n3", "n4", "n5", "n6"} {
		live = append(live, notification.Notification{ID: msg, Message: msg})
	}
	view := stripANSI(RenderToasts(live))
	if strings.Contains(view, "n1") || strings.Contains(view, "n2") {
		t.Errorf("oldest toasts should be hidden:\n%s", view)
	}
	if !strings.Contains(view, "n6") {
		t.Errorf("newest toast missing:\n%s", view)
	}
}

func TestOverlayBottomRight(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 5) + strings.Repeat("-", 20)
	got := OverlayBottomRight(base, "AB\nCD", 20, 1)
	lines := strings.Split(got, "\n")

	if len(lines) != 6 {
		t.Fatalf("line count changed: %d", len(lines))
	}
	if lines[3] != strings.Repeat(".", 17)+"AB." {
		t.Errorf("row 3 = %q", lines[3])
	}
	if lines[4] != strings.Repeat(".", 17)+"CD." {
		t.Errorf("row 4 = %q", lines[4])
	}
	if lines[5] != strings.Repeat("-", 20) {
		t.Errorf("offset row should be untouched, got %q", lines[5])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Errorf("row %d width %d, want 20", i, w)
		}
	}
}

func TestOverlayBottomRight_Empty(t *testing.T) {
	if got := OverlayBottomRight("abc", "", 3, 0); got != "abc" {
		t.Errorf("empty overlay changed base: %q", got)
	}
}
