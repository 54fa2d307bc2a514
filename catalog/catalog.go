// Package catalog holds the textbook's route table: chapters, their paths and their ordered sections. The default
// table is embedded; a YAML file with the same shape can replace it.
//
//	chapters:
//	  - title: Introduction to Probabilities
//	    path: /chapter1
//	    sections:
//	      - {title: Set Operations, url: /chapter1/set-operations}
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hananather/probability/journey"
)

//go:embed chapters.yaml
var defaultYAML []byte

var (
	ErrInvalid         = errors.New("catalog: invalid catalog")
	ErrChapterNotFound = errors.New("catalog: chapter not found")
)

// Link is one section of a chapter.
type Link struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Chapter is a titled route with its ordered sections.
type Chapter struct {
	Title    string `json:"title" yaml:"title"`
	Path     string `json:"path" yaml:"path"`
	Sections []Link `json:"sections" yaml:"sections"`
}

// Catalog is the ordered list of chapters.
type Catalog struct {
	Chapters []Chapter `json:"chapters" yaml:"chapters"`
}

// Default returns the embedded route table.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load decodes and validates a YAML catalog. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: yaml: %v", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks that every title, path and URL is non-empty with no surrounding whitespace, that paths and URLs
// start with "/", that chapters have sections, and that chapter paths are unique.
func (c *Catalog) Validate() error {
	if len(c.Chapters) == 0 {
		return fmt.Errorf("%w: no chapters", ErrInvalid)
	}
	seen := make(map[string]int, len(c.Chapters))
	for i, ch := range c.Chapters {
		where := fmt.Sprintf("chapter %d", i)
		if err := checkText(where+" title", ch.Title); err != nil {
			return err
		}
		if err := checkRoute(where+" path", ch.Path); err != nil {
			return err
		}
		if prev, ok := seen[ch.Path]; ok {
			return fmt.Errorf("%w: chapter %d repeats path %q of chapter %d", ErrInvalid, i, ch.Path, prev)
		}
		seen[ch.Path] = i
		if len(ch.Sections) == 0 {
			return fmt.Errorf("%w: %s (%s) has no sections", ErrInvalid, where, ch.Path)
		}
		for j, s := range ch.Sections {
			if err := checkText(fmt.Sprintf("%s section %d title", where, j), s.Title); err != nil {
				return err
			}
			if err := checkRoute(fmt.Sprintf("%s section %d url", where, j), s.URL); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkText(what, s string) error {
	if s == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalid, what)
	}
	if strings.TrimSpace(s) != s {
		return fmt.Errorf("%w: %s %q has surrounding whitespace", ErrInvalid, what, s)
	}
	return nil
}

func checkRoute(what, s string) error {
	if err := checkText(what, s); err != nil {
		return err
	}
	if !strings.HasPrefix(s, "/") {
		return fmt.Errorf("%w: %s %q must start with /", ErrInvalid, what, s)
	}
	return nil
}

// Find returns the chapter with the given path. A trailing slash is ignored.
func (c *Catalog) Find(path string) (Chapter, error) {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, ch := range c.Chapters {
		if ch.Path == path {
			return ch, nil
		}
	}
	return Chapter{}, fmt.Errorf("%w: %q", ErrChapterNotFound, path)
}

// SectionCount returns the total number of sections across all chapters.
func (c *Catalog) SectionCount() int {
	n := 0
	for _, ch := range c.Chapters {
		n += len(ch.Sections)
	}
	return n
}

// JourneySections converts the chapter's links into journey sections, using each URL as the section ID.
func (ch Chapter) JourneySections() []journey.Section {
	result := make([]journey.Section, len(ch.Sections))
	for i, s := range ch.Sections {
		result[i] = journey.Section{ID: s.URL, Title: s.Title}
	}
	return result
}

// Journey starts a navigation journey through the sections of the chapter at path.
func (c *Catalog) Journey(path string, opts ...journey.Option) (*journey.Journey, error) {
	ch, err := c.Find(path)
	if err != nil {
		return nil, err
	}
	return journey.New(ch.JourneySections(), opts...)
}
