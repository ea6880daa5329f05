// Package skin loads named ControlStyle tables from YAML skin documents.
//
// Each entry is built in three steps: start from the entry named by base
// (or the default ControlStyle), apply the style block to every state, then
// patch individual states. Per-state patches therefore always win over the
// shared block, whatever order the document lists them in.
//
// Hex colors must be quoted ("#ff0000"): YAML reads an unquoted # as the
// start of a comment, and a field left without a value is an error.
package skin

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-ui/internal/logger"
	"github.com/Faultbox/midgard-ui/internal/ui/style"
)

// ErrStyleNotFound is returned when a skin has no entry with a given name.
var ErrStyleNotFound = errors.New("style not found")

// Skin is a named collection of ControlStyles keyed by widget type. The
// stored styles are shared templates; use Clone for a private copy.
type Skin struct {
	Name   string
	styles map[string]*style.ControlStyle
}

// New returns an empty skin.
func New(name string) *Skin {
	return &Skin{
		Name:   name,
		styles: make(map[string]*style.ControlStyle),
	}
}

// Get returns the shared style for name.
func (s *Skin) Get(name string) (*style.ControlStyle, bool) {
	cs, ok := s.styles[name]
	return cs, ok
}

// Clone returns a private copy of the style for name.
func (s *Skin) Clone(name string) (*style.ControlStyle, error) {
	cs, ok := s.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return cs.Copy(), nil
}

// Add stores cs under name, replacing any previous entry.
func (s *Skin) Add(name string, cs *style.ControlStyle) {
	cs.Name = name
	s.styles[name] = cs
}

// Names returns the entry names in sorted order.
func (s *Skin) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (s *Skin) Len() int {
	return len(s.styles)
}

// Load reads and parses a skin file.
func Load(path string) (*Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skin: %w", err)
	}
	sk, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading skin from %s: %w", path, err)
	}
	logger.Named("skin").Info("skin loaded",
		zap.String("name", sk.Name),
		zap.String("path", path),
		zap.Int("styles", sk.Len()),
	)
	return sk, nil
}

// Parse builds a skin from a YAML document. Every invalid entry is
// reported; the returned error combines them.
func Parse(data []byte) (*Skin, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing skin document: %w", err)
	}

	b := &builder{
		doc:      &doc,
		skin:     New(doc.Name),
		visiting: make(map[string]bool),
		failed:   make(map[string]error),
	}

	names := make([]string, 0, len(doc.Styles))
	for name := range doc.Styles {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs error
	for _, name := range names {
		if _, err := b.resolve(name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return b.skin, nil
}

// builder resolves entries with their bases, memoising finished and
// failed ones.
type builder struct {
	doc      *document
	skin     *Skin
	visiting map[string]bool
	failed   map[string]error
}

func (b *builder) resolve(name string) (*style.ControlStyle, error) {
	if cs, ok := b.skin.styles[name]; ok {
		return cs, nil
	}
	if err, ok := b.failed[name]; ok {
		return nil, err
	}

	entry, ok := b.doc.Styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("style %q: base cycle", name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	cs, err := b.build(entry)
	if err != nil {
		err = fmt.Errorf("style %q: %w", name, err)
		b.failed[name] = err
		return nil, err
	}
	b.skin.Add(name, cs)
	return cs, nil
}

func (b *builder) build(entry entryDocs) (*style.ControlStyle, error) {
	var cs *style.ControlStyle
	if entry.Base != "" {
		base, err := b.resolve(entry.Base)
		if err != nil {
			return nil, fmt.Errorf("base %q: %w", entry.Base, err)
		}
		cs = base.Copy()
	} else {
		cs = style.NewControlStyle()
	}

	var errs error

	if entry.Style != nil {
		apply, err := entry.Style.patch()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("style: %w", err))
		} else {
			for _, state := range style.States() {
				apply(cs.At(state))
			}
		}
	}

	stateNames := make([]string, 0, len(entry.States))
	for stateName := range entry.States {
		stateNames = append(stateNames, stateName)
	}
	sort.Strings(stateNames)

	for _, stateName := range stateNames {
		state, ok := style.ParseControlState(stateName)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("unknown state %q", stateName))
			continue
		}
		doc := entry.States[stateName]
		apply, err := doc.patch()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("state %s: %w", strings.ToLower(stateName), err))
			continue
		}
		apply(cs.At(state))
	}

	if errs != nil {
		return nil, errs
	}
	return cs, nil
}
