package portfolio

import (
	"net/url"
	"strings"
)

// None is the placeholder some project documents use instead of leaving a link out.
const None = "none"

// Defaults used when a record leaves a display field out.
const (
	DefaultTitle       = "Project Title"
	DefaultDescription = "A brief description of what this project does and the technologies used to build it."
	DefaultDate        = "2024"
	DefaultStatus      = "Completed"
)

// ProjectRecord describes one portfolio project as supplied by the catalog.
type ProjectRecord struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Image        string   `yaml:"image" json:"image,omitempty"`
	GithubURL    string   `yaml:"githubUrl" json:"githubUrl,omitempty"`
	FrontendRepo string   `yaml:"frontendRepo" json:"frontendRepo,omitempty"`
	BackendRepo  string   `yaml:"backendRepo" json:"backendRepo,omitempty"`
	LiveURL      string   `yaml:"liveUrl" json:"liveUrl,omitempty"`
	Date         string   `yaml:"date" json:"date"`
	Status       string   `yaml:"status" json:"status"`
}

// WithDefaults returns a copy of r with missing display fields filled in.
func (r ProjectRecord) WithDefaults() ProjectRecord {
	out := r
	if strings.TrimSpace(out.Title) == "" {
		out.Title = DefaultTitle
	}
	if strings.TrimSpace(out.Description) == "" {
		out.Description = DefaultDescription
	}
	if strings.TrimSpace(out.Date) == "" {
		out.Date = DefaultDate
	}
	if strings.TrimSpace(out.Status) == "" {
		out.Status = DefaultStatus
	}
	techs := make([]string, 0, len(r.Technologies))
	for _, t := range r.Technologies {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	out.Technologies = techs
	return out
}

// present reports whether an optional link field holds a usable link.
// Blank values, the None placeholder and anything that is not an http(s)
// URL or a rooted path all count as absent.
func present(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" || strings.EqualFold(link, None) {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "":
		return strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(link, "//")
	default:
		return false
	}
}

// HasImage reports whether the record carries an image; cards without one
// show the code glyph instead.
func (r ProjectRecord) HasImage() bool {
	return present(r.Image)
}
