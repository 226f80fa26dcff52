package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v0.3.0", "abc123", "2026-01-02T03:04:05Z"

	want := Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z"}
	if got := Get(); got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if tmpl := Template(); !strings.Contains(tmpl, "v0.3.0") || !strings.Contains(tmpl, "abc123") {
		t.Errorf("Template() = %q, want version and commit", tmpl)
	}
}
