// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Catalog of every dashboard action with its help text
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"strings"
)

// Action groups
const (
	GroupBuffer = "buffer"
	GroupStr    = "str"
	GroupList   = "list"
	GroupAction = "action"
)

// ArgUse says which of the two free-text arguments an action reads
type ArgUse int

const (
	UsesArg1 ArgUse = 1 << iota
	UsesArg2

	UsesNone ArgUse = 0
	UsesBoth        = UsesArg1 | UsesArg2
)

// Arg1 reports whether the first argument is read
func (u ArgUse) Arg1() bool { return u&UsesArg1 != 0 }

// Arg2 reports whether the second argument is read
func (u ArgUse) Arg2() bool { return u&UsesArg2 != 0 }

// Action describes one dashboard action
type Action struct {
	Group string
	Name  string
	Title string
	Help  string
	Uses  ArgUse
}

// Key returns the name Service.Run accepts, for example "list.sort"
func (a Action) Key() string {
	return a.Group + "." + a.Name
}

const regexReplaceExample = "Example: arg1='(\\w+) (\\w+)' and arg2='$2,$1' which turns 'foo bar' into 'bar,foo'"

var catalog = []Action{
	{GroupBuffer, "store", "Store", "Add contents of clipboard to buffer", UsesNone},
	{GroupBuffer, "replace", "Replace", "Replace selected buffers with current clipboard contents", UsesNone},
	{GroupBuffer, "prepend", "Prepend", "Prepend clipboard contents to the beginning of each selected buffer", UsesNone},
	{GroupBuffer, "append", "Append", "Append clipboard contents to the end of each selected buffer", UsesNone},
	{GroupBuffer, "retrieve", "Retrieve", "Copy the focused selected buffer to the clipboard and move focus to the next selected buffer", UsesNone},
	{GroupBuffer, "join", "Join", "Join selected buffers with newlines and copy the result to the clipboard", UsesNone},
	{GroupBuffer, "diff", "Diff", "Diff two selected buffers", UsesNone},
	{GroupBuffer, "up", "Up", "Move selected buffers up", UsesNone},
	{GroupBuffer, "down", "Down", "Move selected buffers down", UsesNone},
	{GroupBuffer, "delete", "Delete", "Delete selected buffers", UsesNone},
	{GroupBuffer, "store-lines", "Store lines", "Store each line from the clipboard into a separate buffer", UsesNone},
	{GroupBuffer, "save", "Save", "Write selected buffers to files in the directory (arg1), or the configured save directory", UsesArg1},
	{GroupBuffer, "load", "Load", "Read files or directories (arg1, separated by the path list separator) into buffers", UsesArg1},

	{GroupStr, "ltrim", "String: Left trim", "Trim whitespace off the left side of the clipboard", UsesNone},
	{GroupStr, "trim", "String: Trim", "Trim whitespace off the left and right side of the clipboard", UsesNone},
	{GroupStr, "rtrim", "String: Right trim", "Trim whitespace off the right side of the clipboard", UsesNone},
	{GroupStr, "lower", "String: Lowercase", "Convert clipboard to lowercase", UsesNone},
	{GroupStr, "upper", "String: Uppercase", "Convert clipboard to uppercase", UsesNone},
	{GroupStr, "prepend", "String: Prepend string", "Prepend text (arg1) to start of clipboard", UsesArg1},
	{GroupStr, "append", "String: Append string", "Append text (arg1) to end of clipboard", UsesArg1},
	{GroupStr, "wrap", "String: Word wrap", "Wrap the clipboard to the given width (arg1). If a line goes too long with no whitespace, it will not be truncated.", UsesArg1},
	{GroupStr, "split", "String: Split", "Split clipboard into multiple lines on given string (arg1)", UsesArg1},
	{GroupStr, "replace", "String: Replace", "Replace all text that matches the search text (arg1), with the replacement string (arg2). \\n, \\t and \\r are expanded in both.", UsesBoth},
	{GroupStr, "regex-replace", "String: Replace via regex", "Replace all text that matches the regex (arg1) with the replacement string (arg2). Supports backreferences in replacement string.\n" + regexReplaceExample, UsesBoth},
	{GroupStr, "strip-ansi", "String: Strip ANSI", "Remove terminal escape sequences from the clipboard", UsesNone},

	{GroupList, "ltrim", "List: Left trim", "Trim whitespace off the left side of each line in the clipboard", UsesNone},
	{GroupList, "trim", "List: Trim", "Trim whitespace off the left and right side of each line in the clipboard", UsesNone},
	{GroupList, "rtrim", "List: Right trim", "Trim whitespace off the right side of each line in the clipboard", UsesNone},
	{GroupList, "collapse", "List: Collapse", "Strip out all empty lines (might be useful to do a trim first)", UsesNone},
	{GroupList, "uniq", "List: Uniquify", "Make items in list unique by removing duplicates next to each other (might be useful to do \"lower\" and \"sort\" operations first)", UsesNone},
	{GroupList, "sort", "List: Sort", "Sort the lines alphabetically in the clipboard", UsesNone},
	{GroupList, "reverse", "List: List reverse", "Reverse the order of the lines in the clipboard", UsesNone},
	{GroupList, "stats", "List: Show stats", "Calculate basic stats on the lines in the clipboard", UsesNone},
	{GroupList, "prepend", "List: Prepend to lines", "Prepend given text (arg1) to the beginning of each line in the clipboard", UsesArg1},
	{GroupList, "append", "List: Append to lines", "Append given text (arg1) to the end of each line in the clipboard", UsesArg1},
	{GroupList, "center", "List: Center lines", "Center each line in the clipboard with given column width (arg1)", UsesArg1},
	{GroupList, "slice", "List: Slice", "Apply Python-style slice syntax (arg1) on each line's characters\nExamples: '4', '3:5', '2:', ':-4'", UsesArg1},
	{GroupList, "join", "List: Join lines with character", "Join each line in the clipboard with the given delimiter (arg1)", UsesArg1},
	{GroupList, "contains", "List Filter: lines that contain...", "Keep lines in the clipboard that contain the given literal string (arg1)", UsesArg1},
	{GroupList, "regex", "List Filter: lines that match regex...", "Keep lines in the clipboard that match the regex (arg1)", UsesArg1},
	{GroupList, "regex-full", "List Filter: full lines that match regex", "Keep lines in the clipboard that match the regex (arg1) exactly. The regex must match the entire line.", UsesArg1},
	{GroupList, "regex-replace", "List: Regex replace", "Replace text in each line that matches the regex (arg1) with the replacement string (arg2). Supports backreferences in replacement string.\n" + regexReplaceExample, UsesBoth},
	{GroupList, "unescape", "List: Unescape", "Expand Go escape sequences such as \\t, \\n and \\u00e9 in each line. Fails on the first line that is not a valid escaped string.", UsesNone},

	{GroupAction, "view", "Action: Open in viewer", "Open contents of clipboard in the configured viewer", UsesNone},
	{GroupAction, "open-urls", "Action: Open as URL", "Open contents of system clipboard as URL's (supports newline separated lists of URL's)", UsesNone},
	{GroupAction, "open-files", "Action: Open files in explorer", "Open contents of system clipboard as files/folders (supports newline separated lists of paths)", UsesNone},
	{GroupAction, "load", "Action: Load file", "Read the file (arg1) into the clipboard", UsesArg1},
}

// Catalog returns every action in display order
func Catalog() []Action {
	return append([]Action(nil), catalog...)
}

// Group returns the actions of one group in display order
func Group(group string) []Action {
	var out []Action
	for _, a := range catalog {
		if a.Group == group {
			out = append(out, a)
		}
	}
	return out
}

// Lookup finds an action by key. "str trim" and "str.trim" are both
// accepted.
func Lookup(key string) (Action, bool) {
	key = strings.Join(strings.Fields(key), ".")
	for _, a := range catalog {
		if a.Key() == key {
			return a, true
		}
	}
	return Action{}, false
}
