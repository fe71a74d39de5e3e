package tabledef

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/rowkit/internal/errors"
	"github.com/Iron-Ham/rowkit/internal/event"
	"github.com/Iron-Ham/rowkit/internal/item"
)

const settingsYAML = `
title: Settings
sections:
  - header: General
    footer: Changes apply on restart
    items:
      - title: Name
        detail: host
        accessory: ">"
      - kind: toggle
        title: Wi-Fi
        on: true
      - kind: value
        title: Volume
        value: "7"
  - header: Sorted
    sort: true
    items:
      - title: cherry
      - title: apple
      - title: banana
  - header: Empty
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	def, err := Parse([]byte(settingsYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Title != "Settings" {
		t.Errorf("Title = %q, want Settings", def.Title)
	}
	if len(def.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(def.Sections))
	}
	if def.ItemCount() != 6 {
		t.Errorf("ItemCount() = %d, want 6", def.ItemCount())
	}
	toggle := def.Sections[0].Items[1]
	if toggle.Kind != item.KindToggle || !toggle.On {
		t.Errorf("toggle item = %+v", toggle)
	}
	if !def.Sections[1].Sort {
		t.Error("second section should be sorted")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{name: "empty", yaml: "", wantMsg: "definition is empty"},
		{name: "no sections", yaml: "title: x\n", wantMsg: "at least one section is required"},
		{name: "unknown key", yaml: "sections:\n  - header: a\n    colour: red\n", wantMsg: "parsing definition"},
		{name: "bad yaml", yaml: "sections: [\n", wantMsg: "parsing definition"},
		{name: "missing title", yaml: "sections:\n  - items:\n      - kind: text\n", wantMsg: "sections[0].items[0].title"},
		{name: "unknown kind", yaml: "sections:\n  - items:\n      - kind: slider\n        title: x\n", wantMsg: "value=slider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !errors.Is(err, errors.ErrInvalidDefinition) {
				t.Errorf("error %v should match ErrInvalidDefinition", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateJoinsAllProblems(t *testing.T) {
	def := &Definition{Sections: []SectionDef{{
		Items: []ItemDef{{Kind: "slider"}, {Kind: "knob", Title: "x"}},
	}}}

	err := def.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	msg := err.Error()
	for _, want := range []string{"items[0].title", "items[0].kind", "items[1].kind"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q: %s", want, msg)
		}
	}
}

func TestLoad(t *testing.T) {
	def, err := Load(writeFile(t, settingsYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(def.Sections) != 3 {
		t.Errorf("got %d sections, want 3", len(def.Sections))
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var notFound *errors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Load(missing) error = %v, want NotFoundError", err)
	}

	path := writeFile(t, "sections: []\n")
	_, err = Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Load(invalid) error = %v, want it to name the file", err)
	}
}

func TestBuild(t *testing.T) {
	def, err := Parse([]byte(settingsYAML))
	if err != nil {
		t.Fatal(err)
	}

	bus := event.NewBus(nil)
	inserted := 0
	bus.Subscribe(event.TypeSectionInserted, func(event.Event) { inserted++ })

	m, err := Build(def, BuildOptions{Bus: bus})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if m.Count() != 3 || inserted != 3 {
		t.Errorf("Count() = %d, inserted events = %d, want 3", m.Count(), inserted)
	}
	if m.TotalItems() != 6 {
		t.Errorf("TotalItems() = %d, want 6", m.TotalItems())
	}

	general, _ := m.SectionAt(0)
	if general.HeaderTitle() != "General" || general.FooterTitle() != "Changes apply on restart" {
		t.Errorf("general titles = %q / %q", general.HeaderTitle(), general.FooterTitle())
	}
	first, _ := general.ItemAt(0)
	text, ok := first.(*item.Text)
	if !ok || text.Detail != "host" || text.Accessory != ">" {
		t.Errorf("first item = %#v", first)
	}
	if general.Index() != 0 {
		t.Errorf("Index() = %d, want 0", general.Index())
	}

	sorted, _ := m.SectionAt(1)
	var titles []string
	for _, it := range sorted.Items() {
		titles = append(titles, item.Title(it))
	}
	if strings.Join(titles, ",") != "apple,banana,cherry" {
		t.Errorf("sorted titles = %v", titles)
	}

	empty, _ := m.SectionAt(2)
	if empty.Count() != 0 {
		t.Errorf("empty section Count() = %d", empty.Count())
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	_, err := Build(&Definition{}, BuildOptions{})
	if !errors.Is(err, errors.ErrInvalidDefinition) {
		t.Errorf("Build(empty) error = %v, want ErrInvalidDefinition", err)
	}
}

func TestItemDef_Item(t *testing.T) {
	tests := []struct {
		def  ItemDef
		kind string
	}{
		{def: ItemDef{Title: "a"}, kind: item.KindText},
		{def: ItemDef{Kind: "text", Title: "a"}, kind: item.KindText},
		{def: ItemDef{Kind: "toggle", Title: "a"}, kind: item.KindToggle},
		{def: ItemDef{Kind: "value", Title: "a", Value: "1"}, kind: item.KindValue},
	}
	for _, tt := range tests {
		got, err := tt.def.Item()
		if err != nil {
			t.Fatalf("Item() error = %v", err)
		}
		if got.Kind() != tt.kind {
			t.Errorf("Kind() = %q, want %q", got.Kind(), tt.kind)
		}
	}

	if _, err := (ItemDef{Kind: "slider"}).Item(); err == nil {
		t.Error("unknown kind should fail")
	}
}
