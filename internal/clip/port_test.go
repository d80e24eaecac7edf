package clip

import (
	"reflect"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		clip string
		sep  string
		want []string
	}{
		{"", "\n", nil},
		{"a", "\n", []string{"a"}},
		{"a\n\nb", "\n", []string{"a", "", "b"}},
		{"a\r\nb", "\r\n", []string{"a", "b"}},
		{"a\n", "\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		got := ReadLines(NewMemoryClipboard(tt.clip), tt.sep)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ReadLines(%q) = %q; want %q", tt.clip, got, tt.want)
		}
	}
}

func TestMemoryClipboard(t *testing.T) {
	c := NewMemoryClipboard("start")
	if c.Read() != "start" || c.Writes() != 0 {
		t.Fatalf("new clipboard = %q, %d writes", c.Read(), c.Writes())
	}
	c.Write("next")
	c.Write("last")
	if c.Read() != "last" || c.Writes() != 2 {
		t.Errorf("clipboard = %q, %d writes", c.Read(), c.Writes())
	}
}
