package clip

import (
	"testing"
)

func TestSubstitute(t *testing.T) {
	vars := map[string]string{"0": "zero", "1": "one", "clip": "CB"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"no variables", "plain text", "plain text"},
		{"index", "a ${0} b", "a zero b"},
		{"several", "${1}${0}${clip}", "onezeroCB"},
		{"unknown left alone", "x ${nope} y", "x ${nope} y"},
		{"escaped", "cost $${0}", "cost ${0}"},
		{"unterminated", "open ${0", "open ${0"},
		{"bare dollar", "$5 and $", "$5 and $"},
		{"empty name", "${}", "${}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.template, vars); got != tt.want {
				t.Errorf("Substitute(%q) = %q; want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestBufferVars(t *testing.T) {
	vars := BufferVars([]string{"first", "second"}, "live")
	want := map[string]string{"0": "first", "1": "second", "clip": "live"}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%q] = %q; want %q", k, vars[k], v)
		}
	}
	if len(vars) != len(want) {
		t.Errorf("len(vars) = %d; want %d", len(vars), len(want))
	}
}
