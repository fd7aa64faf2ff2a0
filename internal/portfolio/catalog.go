package portfolio

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Site is the page-level metadata that accompanies the project list.
type Site struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Author      string   `yaml:"author" json:"author"`
	AuthorURL   string   `yaml:"authorUrl" json:"authorUrl"`
	Headline    string   `yaml:"headline" json:"headline"`
	Accent      string   `yaml:"accent" json:"accent"`
	Tagline     string   `yaml:"tagline" json:"tagline"`
	About       string   `yaml:"about" json:"about"`
}

// Catalog is the project document the site is built from.
type Catalog struct {
	Site     Site            `yaml:"site" json:"site"`
	Projects []ProjectRecord `yaml:"projects" json:"projects"`
}

// ParseCatalog decodes a catalog document. JSON documents are accepted too.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c.Site = c.Site.withDefaults()
	return &c, nil
}

// LoadCatalog reads and decodes the catalog at path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Cards resolves every project in document order.
func (c *Catalog) Cards() []Card {
	if c == nil {
		return nil
	}
	return Cards(c.Projects)
}

func (s Site) withDefaults() Site {
	if strings.TrimSpace(s.Title) == "" {
		s.Title = "Portfolio"
	}
	if strings.TrimSpace(s.Headline) == "" {
		s.Headline = "My"
	}
	if strings.TrimSpace(s.Accent) == "" {
		s.Accent = "Projects"
	}
	return s
}
