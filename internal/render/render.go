// Package render draws a section manager as styled terminal text.
//
// Section stores a header title and a header view independently; which of
// the two is shown is decided here by [HeaderPrecedence].
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/rowkit/internal/item"
	"github.com/Iron-Ham/rowkit/internal/manager"
	"github.com/Iron-Ham/rowkit/internal/section"
)

// HeaderPrecedence picks between a section's title and view when both are
// set.
type HeaderPrecedence string

const (
	// PreferView shows the view when present and the title otherwise.
	PreferView HeaderPrecedence = "view"
	// PreferTitle shows the title when non-empty and the view otherwise.
	PreferTitle HeaderPrecedence = "title"
)

// ValidHeaderPrecedences returns the accepted precedence names.
func ValidHeaderPrecedences() []string {
	return []string{string(PreferView), string(PreferTitle)}
}

// Options controls how a table is drawn.
type Options struct {
	// Width is the line width rows are aligned to. Zero disables alignment.
	Width int
	// Theme selects the color palette.
	Theme ThemeName
	// HeaderPrecedence resolves sections with both a title and a view.
	HeaderPrecedence HeaderPrecedence
	// ShowEmptySections draws sections without items.
	ShowEmptySections bool
	// ShowIndex prefixes each row with its item index.
	ShowIndex bool
	// Cursor highlights one row; nil highlights nothing.
	Cursor *manager.IndexPath
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Theme:             ThemeDefault,
		HeaderPrecedence:  PreferView,
		ShowEmptySections: true,
	}
}

// HeaderText returns the header a section shows under precedence p, or "".
func HeaderText(s *section.Section, p HeaderPrecedence) string {
	return pick(s.HeaderTitle(), s.HeaderView(), p)
}

// FooterText returns the footer a section shows under precedence p, or "".
func FooterText(s *section.Section, p HeaderPrecedence) string {
	return pick(s.FooterTitle(), s.FooterView(), p)
}

func pick(title string, view section.View, p HeaderPrecedence) string {
	if p == PreferTitle {
		if title != "" {
			return title
		}
		if view != nil {
			return view.View()
		}
		return ""
	}
	if view != nil {
		return view.View()
	}
	return title
}

// Render draws every section of m.
func Render(m *manager.Manager, opts Options) string {
	r := newRenderer(opts)
	var blocks []string
	for si, s := range m.Sections() {
		if s.Count() == 0 && !opts.ShowEmptySections {
			continue
		}
		blocks = append(blocks, r.section(si, s))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderSection draws a single section. Cursor positions in opts are matched
// against sectionIndex.
func RenderSection(s *section.Section, sectionIndex int, opts Options) string {
	return newRenderer(opts).section(sectionIndex, s)
}

type renderer struct {
	opts   Options
	styles *Styles
}

func newRenderer(opts Options) *renderer {
	if opts.HeaderPrecedence == "" {
		opts.HeaderPrecedence = PreferView
	}
	return &renderer{opts: opts, styles: StylesFor(opts.Theme)}
}

func (r *renderer) section(si int, s *section.Section) string {
	var lines []string

	if header := HeaderText(s, r.opts.HeaderPrecedence); header != "" {
		lines = append(lines, r.styles.Header.Render(r.fit(header)))
		if r.opts.Width > 0 {
			lines = append(lines, r.styles.Rule.Render(strings.Repeat("─", r.opts.Width)))
		}
	}

	if s.Count() == 0 {
		lines = append(lines, r.styles.Empty.Render("  (empty)"))
	}
	for ii, it := range s.All() {
		selected := r.opts.Cursor != nil && *r.opts.Cursor == manager.IndexPath{Section: si, Item: ii}
		lines = append(lines, r.row(it, ii, selected))
	}

	if footer := FooterText(s, r.opts.HeaderPrecedence); footer != "" {
		lines = append(lines, r.styles.Footer.Render(r.fit(footer)))
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) row(it section.Item, index int, selected bool) string {
	prefix := "  "
	if selected {
		prefix = r.styles.Cursor.Render("> ")
	}
	if r.opts.ShowIndex {
		prefix += r.styles.Index.Render(fmt.Sprintf("%d. ", index))
	}
	left, right := r.cells(it)
	line := layout(prefix+left, right, r.opts.Width)
	if selected {
		line = r.styles.Selected.Render(line)
	}
	return line
}

// cells returns the left and right parts of a row.
func (r *renderer) cells(it section.Item) (string, string) {
	st := r.styles
	switch v := it.(type) {
	case *item.Text:
		left := st.Title.Render(v.Title)
		if v.Detail != "" {
			left += " " + st.Detail.Render(v.Detail)
		}
		if v.Accessory != "" {
			return left, st.Accessory.Render(v.Accessory)
		}
		return left, ""
	case *item.Toggle:
		if v.On {
			return st.Title.Render(v.Title), st.ToggleOn.Render("[on]")
		}
		return st.Title.Render(v.Title), st.ToggleOff.Render("[off]")
	case *item.Value:
		return st.Title.Render(v.Title), st.Value.Render(v.Value)
	default:
		return st.Title.Render(item.Title(it)), ""
	}
}

func (r *renderer) fit(s string) string {
	if r.opts.Width > 0 {
		return ansi.Truncate(s, r.opts.Width, "…")
	}
	return s
}

// layout places right flush against width, truncating left when both do not
// fit. A non-positive width separates the parts with a single space.
func layout(left, right string, width int) string {
	if right == "" {
		if width > 0 {
			return ansi.Truncate(left, width, "…")
		}
		return left
	}
	if width <= 0 {
		return left + " " + right
	}
	rw := lipgloss.Width(right)
	if lipgloss.Width(left)+rw+1 > width {
		left = ansi.Truncate(left, max(width-rw-1, 0), "…")
	}
	gap := max(width-lipgloss.Width(left)-rw, 1)
	return left + strings.Repeat(" ", gap) + right
}
