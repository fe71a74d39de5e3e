package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/rowkit/internal/item"
	"github.com/Iron-Ham/rowkit/internal/manager"
	"github.com/Iron-Ham/rowkit/internal/section"
)

type stubView string

func (v stubView) View() string { return string(v) }

func plain(s string) string { return ansi.Strip(s) }

func newManager(t *testing.T, sections ...*section.Section) *manager.Manager {
	t.Helper()
	m := manager.New()
	for _, s := range sections {
		if err := m.AddSection(s); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}
	return m
}

func TestHeaderText(t *testing.T) {
	both := section.NewWithHeaderTitle("Title")
	both.SetHeaderView(stubView("View"))
	titleOnly := section.NewWithHeaderTitle("Title")
	viewOnly := section.NewWithHeaderView(stubView("View"))

	tests := []struct {
		name string
		s    *section.Section
		p    HeaderPrecedence
		want string
	}{
		{name: "view wins by default", s: both, p: PreferView, want: "View"},
		{name: "title preferred", s: both, p: PreferTitle, want: "Title"},
		{name: "title only under view precedence", s: titleOnly, p: PreferView, want: "Title"},
		{name: "view only under title precedence", s: viewOnly, p: PreferTitle, want: "View"},
		{name: "none", s: section.New(), p: PreferView, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeaderText(tt.s, tt.p); got != tt.want {
				t.Errorf("HeaderText() = %q, want %q", got, tt.want)
			}
		})
	}

	footer := section.NewWithTitles("", "End")
	if got := FooterText(footer, PreferView); got != "End" {
		t.Errorf("FooterText() = %q, want End", got)
	}
}

func TestRender(t *testing.T) {
	general := section.NewWithTitles("General", "Changes apply on restart")
	_ = general.AddItems(
		&item.Text{Title: "Name", Detail: "host", Accessory: ">"},
		item.NewToggle("Wi-Fi", true),
		item.NewToggle("Bluetooth", false),
		item.NewValue("Volume", "7"),
	)
	empty := section.NewWithHeaderTitle("Nothing")

	m := newManager(t, general, empty)

	out := plain(Render(m, DefaultOptions()))

	for _, want := range []string{
		"General", "Name", "host", ">", "Wi-Fi", "[on]", "Bluetooth", "[off]",
		"Volume", "7", "Changes apply on restart", "Nothing", "(empty)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Wi-Fi") > strings.Index(out, "Bluetooth") {
		t.Error("rows should appear in section order")
	}
}

func TestRenderHidesEmptySections(t *testing.T) {
	full := section.NewWithHeaderTitle("Full")
	_ = full.AddItem(item.NewText("row"))
	m := newManager(t, full, section.NewWithHeaderTitle("Hidden"))

	opts := DefaultOptions()
	opts.ShowEmptySections = false
	out := plain(Render(m, opts))

	if strings.Contains(out, "Hidden") {
		t.Errorf("empty section should be hidden:\n%s", out)
	}
	if !strings.Contains(out, "Full") {
		t.Errorf("non-empty section missing:\n%s", out)
	}
}

func TestRenderWidth(t *testing.T) {
	s := section.NewWithHeaderTitle("Audio")
	_ = s.AddItems(item.NewValue("Volume", "7"), item.NewText("A very long row title that will not fit"))
	m := newManager(t, s)

	opts := DefaultOptions()
	opts.Width = 20
	out := Render(m, opts)

	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line %d width = %d, want <= 20: %q", i, w, plain(line))
		}
	}
	lines := strings.Split(plain(out), "\n")
	if len(lines) < 3 || !strings.HasSuffix(lines[2], "7") {
		t.Errorf("value should be right aligned, got %q", lines)
	}
	if !strings.Contains(plain(out), "…") {
		t.Errorf("long title should be truncated:\n%s", plain(out))
	}
}

func TestRenderCursorAndIndex(t *testing.T) {
	a := section.New(section.WithItems(item.NewText("first"), item.NewText("second")))
	m := newManager(t, a)

	opts := DefaultOptions()
	opts.ShowIndex = true
	opts.Cursor = &manager.IndexPath{Section: 0, Item: 1}
	lines := strings.Split(plain(Render(m, opts)), "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "  0. first") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "> 1. second") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderSectionUsesView(t *testing.T) {
	s := section.NewWithHeaderTitle("Title")
	s.SetHeaderView(stubView("Custom header"))

	out := plain(RenderSection(s, 0, DefaultOptions()))
	if !strings.Contains(out, "Custom header") || strings.Contains(out, "Title") {
		t.Errorf("view should take precedence:\n%s", out)
	}

	opts := DefaultOptions()
	opts.HeaderPrecedence = PreferTitle
	out = plain(RenderSection(s, 0, opts))
	if !strings.Contains(out, "Title") {
		t.Errorf("title should take precedence:\n%s", out)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		width       int
		want        string
	}{
		{name: "no width", left: "a", right: "b", width: 0, want: "a b"},
		{name: "aligned", left: "a", right: "b", width: 5, want: "a   b"},
		{name: "left only", left: "abc", right: "", width: 0, want: "abc"},
		{name: "exact fit", left: "ab", right: "c", width: 4, want: "ab c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout(tt.left, tt.right, tt.width); got != tt.want {
				t.Errorf("layout() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThemes(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false", name)
		}
		if GetPalette(ThemeName(name)) == nil {
			t.Errorf("GetPalette(%q) = nil", name)
		}
	}
	if IsValidTheme("neon") {
		t.Error("IsValidTheme(neon) = true, want false")
	}
	if GetPalette("neon").Primary != DefaultPalette().Primary {
		t.Error("unknown theme should fall back to default palette")
	}
}
