package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/internal/clip"
	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

func newTestModel(t *testing.T, clipboard string, initial ...string) (Model, *clip.MemoryClipboard) {
	t.Helper()

	cfg := config.Default()
	cfg.General.LineSeparator = "lf"
	cfg.General.StatusTimeout.Duration = time.Second
	cfg.Buffers.InitialClips = initial

	port := clip.NewMemoryClipboard(clipboard)
	svc := clip.NewService(port, cfg, logging.NewNop("test"))
	t.Cleanup(func() { _ = svc.Close() })

	m := New(context.Background(), svc, cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), port
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// selectAction moves the palette cursor to the action named key
func selectAction(t *testing.T, m Model, key string) Model {
	t.Helper()
	for i, a := range clip.Catalog() {
		if a.Key() == key {
			m.actions.Select(i)
			if got, _ := m.selectedAction(); got.Key() != key {
				t.Fatalf("selectedAction() = %q; want %q", got.Key(), key)
			}
			return m
		}
	}
	t.Fatalf("action %q not in catalog", key)
	return m
}

func TestModel_Store(t *testing.T) {
	m, _ := newTestModel(t, "hello", "a", "b")

	m = press(m, "s")

	if got, _ := m.svc.Buffers().Get(0); got != "hello" {
		t.Errorf("buffer 0 = %q; want %q", got, "hello")
	}
	if !m.status.OK() || m.status.Message == "" {
		t.Errorf("status = %+v; want a success message", m.status)
	}
	if len(m.logLines) != 1 {
		t.Errorf("log has %d lines; want 1", len(m.logLines))
	}
}

func TestModel_ToggleAndRetrieve(t *testing.T) {
	m, port := newTestModel(t, "", "a", "b", "c")

	m = press(m, "down", "space")
	if !m.sel.Has(1) || m.sel.Len() != 1 {
		t.Fatalf("selection = %+v; want only buffer 1", m.sel)
	}

	m = press(m, "enter")
	if got := port.Read(); got != "b" {
		t.Errorf("clipboard = %q; want %q", got, "b")
	}
}

func TestModel_RetrieveRotates(t *testing.T) {
	m, port := newTestModel(t, "", "a", "b", "c")

	m = press(m, "space", "down", "down", "space")
	if m.sel.Len() != 2 || m.sel.Focus != 2 {
		t.Fatalf("selection = %+v; want buffers 0 and 2 with focus 2", m.sel)
	}

	var got []string
	for i := 0; i < 3; i++ {
		m = press(m, "r")
		got = append(got, port.Read())
	}
	want := []string{"c", "a", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("retrieved %v; want %v", got, want)
	}
}

func TestModel_EnterWithoutSelectionRetrievesCursor(t *testing.T) {
	m, port := newTestModel(t, "", "a", "b", "c")

	m = press(m, "down", "down", "enter")

	if got := port.Read(); got != "c" {
		t.Errorf("clipboard = %q; want %q", got, "c")
	}
	if !m.sel.Has(2) {
		t.Errorf("selection = %+v; want buffer 2 selected", m.sel)
	}
}

func TestModel_SelectAllAndDelete(t *testing.T) {
	m, _ := newTestModel(t, "", "a", "b", "c")

	m = press(m, "ctrl+a")
	if m.sel.Len() != 3 {
		t.Fatalf("selection = %+v; want all 3 buffers", m.sel)
	}

	m = press(m, "d")
	if n := m.svc.Buffers().Len(); n != 0 {
		t.Errorf("buffers = %d; want 0", n)
	}
	if !m.sel.Empty() {
		t.Errorf("selection = %+v; want empty", m.sel)
	}

	m = press(m, "ctrl+a")
	if !m.sel.Empty() {
		t.Errorf("select all on an empty list selected %+v", m.sel)
	}
}

func TestModel_SelectAllTogglesOff(t *testing.T) {
	m, _ := newTestModel(t, "", "a", "b")

	m = press(m, "ctrl+a", "ctrl+a")
	if !m.sel.Empty() {
		t.Errorf("selection = %+v; want empty", m.sel)
	}
}

func TestModel_MoveDown(t *testing.T) {
	m, _ := newTestModel(t, "", "a", "b", "c")

	m = press(m, "space", "J")

	if got := strings.Join(m.svc.Buffers().All(), ","); got != "b,a,c" {
		t.Errorf("buffers = %q; want %q", got, "b,a,c")
	}
	if !m.sel.Has(1) || m.sel.Focus != 1 {
		t.Errorf("selection = %+v; want buffer 1 focused", m.sel)
	}

	m = press(m, "K")
	if got := strings.Join(m.svc.Buffers().All(), ","); got != "a,b,c" {
		t.Errorf("buffers = %q; want %q", got, "a,b,c")
	}
}

func TestModel_ArgumentsFeedSelectedAction(t *testing.T) {
	m, port := newTestModel(t, "clip", "a")
	m = selectAction(t, m, "str.prepend")

	// tab twice reaches arg1, typing "s" must not store
	m = press(m, "tab", "tab", ">", "s", " ")
	if m.focus != paneArg1 {
		t.Fatalf("focus = %v; want arg1", m.focus)
	}
	if n := m.svc.Buffers().Len(); n != 1 {
		t.Fatalf("typing into arg1 changed the buffers: %d", n)
	}

	m = press(m, "enter")
	if got := port.Read(); got != ">s clip" {
		t.Errorf("clipboard = %q; want %q", got, ">s clip")
	}

	m = press(m, "esc")
	if m.focus != paneBuffers {
		t.Errorf("focus after esc = %v; want buffers", m.focus)
	}
}

func TestModel_SecondArgument(t *testing.T) {
	m, port := newTestModel(t, "a-b", "x")
	m = selectAction(t, m, "str.replace")

	m = press(m, "tab", "tab", "-", "tab", "+", "enter")
	if got := port.Read(); got != "a+b" {
		t.Errorf("clipboard = %q; want %q", got, "a+b")
	}
}

func TestModel_PaneCycle(t *testing.T) {
	m, _ := newTestModel(t, "", "a")

	want := []pane{paneActions, paneArg1, paneArg2, paneBuffers}
	for _, p := range want {
		m = press(m, "tab")
		if m.focus != p {
			t.Fatalf("focus = %v; want %v", m.focus, p)
		}
	}

	m = press(m, "shift+tab")
	if m.focus != paneArg2 {
		t.Errorf("focus after shift+tab = %v; want arg2", m.focus)
	}
}

func TestModel_ActionError(t *testing.T) {
	m, _ := newTestModel(t, "", "a", "b")
	m = selectAction(t, m, "buffer.diff")

	m = press(m, "tab", "enter")

	if m.status.OK() {
		t.Fatalf("status = %+v; want an error", m.status)
	}
	if !strings.HasPrefix(m.status.String(), "ERROR: ") {
		t.Errorf("status = %q; want ERROR prefix", m.status.String())
	}
	if !m.logLines[0].err {
		t.Error("log entry not marked as error")
	}
}

func TestModel_StatusExpires(t *testing.T) {
	m, _ := newTestModel(t, "x", "a")

	m = press(m, "s")
	seq := m.statusSeq

	m = send(m, clearStatusMsg{seq: seq - 1})
	if m.status.Message == "" {
		t.Error("stale clear message removed the current status")
	}

	m = send(m, clearStatusMsg{seq: seq})
	if m.status.Message != "" {
		t.Errorf("status = %q; want cleared", m.status.Message)
	}
}

func TestModel_FocusToggles(t *testing.T) {
	m, port := newTestModel(t, "new", "a", "b")

	m = send(m, tea.FocusMsg{})
	if n := m.svc.Buffers().Len(); n != 2 {
		t.Fatalf("focus with toggles off changed buffers: %d", n)
	}

	m = press(m, "o")
	if !m.svc.Behaviour().StoreOnFocus {
		t.Fatal("o did not enable store on focus")
	}
	m = send(m, tea.FocusMsg{})
	if got, _ := m.svc.Buffers().Get(0); got != "new" {
		t.Errorf("buffer 0 = %q; want %q", got, "new")
	}

	// retrieve on focus needs a selection
	m = press(m, "o", "O")
	port.Write("other")
	m = send(m, tea.FocusMsg{})
	if got := port.Read(); got != "other" {
		t.Errorf("retrieve without selection wrote %q", got)
	}

	m = press(m, "down", "down", "space")
	m = send(m, tea.FocusMsg{})
	if got := port.Read(); got != "b" {
		t.Errorf("clipboard = %q; want %q", got, "b")
	}
}

func TestModel_StartupStore(t *testing.T) {
	m, _ := newTestModel(t, "boot", "a")

	m = send(m, startupMsg{})
	if n := m.svc.Buffers().Len(); n != 1 {
		t.Errorf("startup store ran with the toggle off")
	}

	m = press(m, "o")
	m = send(m, startupMsg{})
	if got, _ := m.svc.Buffers().Get(0); got != "boot" {
		t.Errorf("buffer 0 = %q; want %q", got, "boot")
	}
}

func TestModel_Hotkey(t *testing.T) {
	m, _ := newTestModel(t, "from hotkey")

	m = send(m, hotkeyMsg{})
	if got, _ := m.svc.Buffers().Get(0); got != "from hotkey" {
		t.Errorf("buffer 0 = %q; want %q", got, "from hotkey")
	}
}

func TestModel_VariableToggleAndHelp(t *testing.T) {
	m, _ := newTestModel(t, "", "a")

	m = press(m, "v")
	if !m.svc.Behaviour().VariableSubstitution {
		t.Error("v did not enable variable substitution")
	}

	m = press(m, "?")
	if !m.help.ShowAll {
		t.Error("? did not expand the help")
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, "", "first buffer", "second\nbuffer")

	view := m.View()
	for _, want := range []string{"ClipDash", "Buffers (2)", "first buffer", "Actions"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	var unready Model
	if got := unready.View(); got != "Loading dashboard..." {
		t.Errorf("View() before sizing = %q", got)
	}
}

func TestHotkeyBinding_String(t *testing.T) {
	b, err := parseHotkey(config.HotkeyConfig{Modifiers: []string{"Ctrl", "SHIFT"}, Key: "C"})
	if err != nil {
		t.Fatalf("parseHotkey() error = %v", err)
	}
	if got := b.String(); got != "ctrl+shift+c" {
		t.Errorf("String() = %q; want %q", got, "ctrl+shift+c")
	}
}

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		name    string
		mods    []string
		key     string
		wantErr bool
	}{
		{"default", []string{"ctrl", "shift"}, "c", false},
		{"alt digit", []string{"Alt"}, "1", false},
		{"function key", nil, "f5", false},
		{"space", []string{"super"}, " Space ", false},
		{"multi char key", []string{"ctrl"}, "ab", true},
		{"unknown modifier", []string{"hyper"}, "c", true},
		{"unknown key", []string{"ctrl"}, "pause", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := parseHotkey(config.HotkeyConfig{Modifiers: tt.mods, Key: tt.key})
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHotkey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !cderror.HasCode(err, cderror.CodeInvalidInput) {
					t.Errorf("parseHotkey() error code = %v; want %v", cderror.GetCode(err), cderror.CodeInvalidInput)
				}
				return
			}
			if len(b.Modifiers) != len(tt.mods) {
				t.Errorf("parseHotkey() returned %d modifiers; want %d", len(b.Modifiers), len(tt.mods))
			}
		})
	}
}
