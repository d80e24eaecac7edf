package clip

import (
	"testing"
)

func TestCatalog_UniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if seen[a.Key()] {
			t.Errorf("duplicate action %s", a.Key())
		}
		seen[a.Key()] = true
		if a.Title == "" || a.Help == "" {
			t.Errorf("%s lacks title or help", a.Key())
		}
	}
}

func TestCatalog_Groups(t *testing.T) {
	total := 0
	for _, g := range []string{GroupBuffer, GroupStr, GroupList, GroupAction} {
		actions := Group(g)
		if len(actions) == 0 {
			t.Errorf("group %s is empty", g)
		}
		total += len(actions)
	}
	if total != len(Catalog()) {
		t.Errorf("groups hold %d actions; catalog has %d", total, len(Catalog()))
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"list.sort", "List: Sort", true},
		{"list sort", "List: Sort", true},
		{"  str   regex-replace ", "String: Replace via regex", true},
		{"list.nope", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		a, ok := Lookup(tt.key)
		if ok != tt.ok || a.Title != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.key, a.Title, ok, tt.want, tt.ok)
		}
	}
}

func TestArgUse(t *testing.T) {
	tests := []struct {
		use        ArgUse
		arg1, arg2 bool
	}{
		{UsesNone, false, false},
		{UsesArg1, true, false},
		{UsesArg2, false, true},
		{UsesBoth, true, true},
	}
	for _, tt := range tests {
		if tt.use.Arg1() != tt.arg1 || tt.use.Arg2() != tt.arg2 {
			t.Errorf("ArgUse(%d) = %v/%v; want %v/%v", tt.use, tt.use.Arg1(), tt.use.Arg2(), tt.arg1, tt.arg2)
		}
	}
}
