package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestIcon(t *testing.T) {
	tests := []struct {
		name  string
		icon  string
		class string
		want  string
	}{
		{"bare", "activity", "", `<span class="iconify inline-block" data-icon="lucide:activity" aria-hidden="true"></span>`},
		{"with class", "arrow-right", "w-4 h-4", `<span class="iconify inline-block w-4 h-4" data-icon="lucide:arrow-right" aria-hidden="true"></span>`},
		{"already prefixed", "lucide:menu", "", `<span class="iconify inline-block" data-icon="lucide:menu" aria-hidden="true"></span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, Icon(tt.icon, tt.class)))
		})
	}
}

func TestIconBadge(t *testing.T) {
	out := render(t, IconBadge("shield-check", "w-12 h-12", "w-6 h-6"))
	assert.Contains(t, out, `class="flex items-center justify-center shrink-0 w-12 h-12"`)
	assert.Contains(t, out, `data-icon="lucide:shield-check"`)
}

func TestHx(t *testing.T) {
	assert.Equal(t, ` hx-post="/contact/1/submit"`, render(t, Hx("post", "/contact/1/submit")))
}
