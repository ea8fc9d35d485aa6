package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2024-01-01"
	defer func() { Version, Commit, Date = "dev", "none", "unknown" }()

	if got := Template(); got != "{{.Name}} version v1.2.3\ncommit: abc123\nbuilt: 2024-01-01\n" {
		t.Errorf("Template() = %q", got)
	}
	if !strings.HasPrefix(String(), "version: v1.2.3\n") {
		t.Errorf("String() = %q", String())
	}
}
