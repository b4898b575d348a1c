package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"iPhone 14 Pro Max 256GB", "iphone-14-pro-max-256gb"},
		{"Café & Té!", "cafe-te"},
		{"  Múltiple   spaces  ", "multiple-spaces"},
		{"Ñandú über Zürich", "nandu-uber-zurich"},
		{"already-a-slug", "already-a-slug"},
		{"Dash - heavy -- title", "dash-heavy-title"},
		{"100% algodón", "100-algodon"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.title), "title %q", tc.title)
	}
}
