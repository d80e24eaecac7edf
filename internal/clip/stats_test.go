package clip

import (
	"testing"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Stats
	}{
		{"empty", "", Stats{}},
		{"single", "hello world", Stats{Lines: 1, Chars: 11, Words: 2, MinLineLen: 11, MaxLineLen: 11, AvgLineLen: 11}},
		{"several", "ab\n\nabcd", Stats{Lines: 3, Chars: 8, Words: 2, MinLineLen: 0, MaxLineLen: 4, AvgLineLen: 2}},
		{"runes", "äö", Stats{Lines: 1, Chars: 2, Words: 1, MinLineLen: 2, MaxLineLen: 2, AvgLineLen: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStats(tt.text, "\n"); got != tt.want {
				t.Errorf("ComputeStats(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStats_String(t *testing.T) {
	got := ComputeStats("a\nbcd", "\n").String()
	want := "List stats: lines=2 chars=5 words=2 min/max/avgLineLength=1 / 3 / 2.0"
	if got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
