// Package tabledef loads table definitions from YAML and builds section
// managers from them.
//
// A definition lists sections in display order:
//
//	title: Settings
//	sections:
//	  - header: General
//	    footer: Changes apply on restart
//	    sort: true
//	    items:
//	      - kind: text
//	        title: Name
//	        detail: host
//	        accessory: ">"
//	      - kind: toggle
//	        title: Wi-Fi
//	        on: true
//	      - kind: value
//	        title: Volume
//	        value: "7"
//
// An item without a kind is a text row.
package tabledef

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/rowkit/internal/errors"
	"github.com/Iron-Ham/rowkit/internal/event"
	"github.com/Iron-Ham/rowkit/internal/item"
	"github.com/Iron-Ham/rowkit/internal/logging"
	"github.com/Iron-Ham/rowkit/internal/manager"
	"github.com/Iron-Ham/rowkit/internal/section"
)

// Definition is a table read from YAML.
type Definition struct {
	// Title names the table (optional)
	Title string `yaml:"title,omitempty"`
	// Sections in display order
	Sections []SectionDef `yaml:"sections"`
}

// SectionDef describes one section.
type SectionDef struct {
	Header string    `yaml:"header,omitempty"`
	Footer string    `yaml:"footer,omitempty"`
	Sort   bool      `yaml:"sort,omitempty"`
	Items  []ItemDef `yaml:"items,omitempty"`
}

// ItemDef describes one row. Which fields apply depends on Kind.
type ItemDef struct {
	Kind      string `yaml:"kind,omitempty"`
	Title     string `yaml:"title"`
	Detail    string `yaml:"detail,omitempty"`
	Accessory string `yaml:"accessory,omitempty"`
	On        bool   `yaml:"on,omitempty"`
	Value     string `yaml:"value,omitempty"`
}

// ValidKinds returns the accepted item kinds.
func ValidKinds() []string {
	return []string{item.KindText, item.KindToggle, item.KindValue}
}

// Load reads and parses the definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("definition", path).WithCause(err)
		}
		return nil, fmt.Errorf("reading definition: %w", err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return def, nil
}

// Parse decodes a definition and validates it. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("", nil, "definition is empty")
		}
		return nil, errors.NewValidationError("parsing definition").
			WithCause(errors.Join(errors.ErrInvalidDefinition, err))
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate reports every problem in the definition, joined.
func (d *Definition) Validate() error {
	var errs []error
	if len(d.Sections) == 0 {
		errs = append(errs, invalid("sections", nil, "at least one section is required"))
	}
	for si, s := range d.Sections {
		for ii, it := range s.Items {
			field := fmt.Sprintf("sections[%d].items[%d]", si, ii)
			if it.Title == "" {
				errs = append(errs, invalid(field+".title", nil, "title is required"))
			}
			if !isValidKind(it.Kind) {
				errs = append(errs, invalid(field+".kind", it.Kind, "unknown item kind"))
			}
		}
	}
	return errors.Join(errs...)
}

// ItemCount returns the number of items across all sections.
func (d *Definition) ItemCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Items)
	}
	return n
}

func isValidKind(kind string) bool {
	switch kind {
	case "", item.KindText, item.KindToggle, item.KindValue:
		return true
	}
	return false
}

func invalid(field string, value any, message string) error {
	err := errors.NewValidationError(message).WithCause(errors.ErrInvalidDefinition)
	if field != "" {
		err = err.WithField(field)
	}
	if value != nil {
		err = err.WithValue(value)
	}
	return err
}

// Item converts the definition into a row.
func (d ItemDef) Item() (section.Item, error) {
	switch d.Kind {
	case "", item.KindText:
		return &item.Text{Title: d.Title, Detail: d.Detail, Accessory: d.Accessory}, nil
	case item.KindToggle:
		return item.NewToggle(d.Title, d.On), nil
	case item.KindValue:
		return item.NewValue(d.Title, d.Value), nil
	}
	return nil, invalid("kind", d.Kind, "unknown item kind")
}

// BuildOptions wires the built manager into the rest of the program.
type BuildOptions struct {
	Bus    *event.Bus
	Logger *logging.Logger
}

// Build creates a manager holding one attached section per SectionDef.
// Sections marked sort are sorted by title after their items are added.
func Build(def *Definition, opts BuildOptions) (*manager.Manager, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	m := manager.New(manager.WithBus(opts.Bus), manager.WithLogger(logger))
	for si, sd := range def.Sections {
		s, err := buildSection(sd, logger)
		if err != nil {
			return nil, errors.Wrapf(err, "section %d", si)
		}
		if err := m.AddSection(s); err != nil {
			return nil, err
		}
	}
	logger.Debug("table built", "sections", m.Count(), "items", m.TotalItems())
	return m, nil
}

func buildSection(sd SectionDef, logger *logging.Logger) (*section.Section, error) {
	items := make([]section.Item, 0, len(sd.Items))
	for _, d := range sd.Items {
		it, err := d.Item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	s := section.New(
		section.WithHeaderTitle(sd.Header),
		section.WithFooterTitle(sd.Footer),
		section.WithLogger(logger),
	)
	if err := s.AddItems(items...); err != nil {
		return nil, err
	}
	if sd.Sort {
		if err := s.SortItems(); err != nil {
			return nil, err
		}
	}
	return s, nil
}
