package portfolio

import "strings"

// LinkKind identifies which affordance a link stands for.
type LinkKind string

const (
	KindFrontend LinkKind = "frontend"
	KindBackend  LinkKind = "backend"
	KindCode     LinkKind = "code"
	KindLive     LinkKind = "live"
)

// Every action link opens in a new browsing context without exposing the
// opener or the referrer.
const (
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"
)

// Link is a single action button on a project card.
type Link struct {
	Kind  LinkKind `json:"kind"`
	Label string   `json:"label"`
	Href  string   `json:"href"`
}

// Target is the browsing context the link opens in.
func (Link) Target() string { return LinkTarget }

// Rel is the link relationship rendered on the anchor.
func (Link) Rel() string { return LinkRel }

// Actions is the resolved set of affordances for one card.
type Actions struct {
	// Repos holds the repository links. In dual-repo mode it holds exactly
	// the Frontend and Backend links and Split is set.
	Repos      []Link `json:"repos"`
	Split      bool   `json:"split"`
	Live       *Link  `json:"live,omitempty"`
	ComingSoon bool   `json:"comingSoon"`
}

// Links returns every rendered link in display order.
func (a Actions) Links() []Link {
	out := make([]Link, 0, len(a.Repos)+1)
	out = append(out, a.Repos...)
	if a.Live != nil {
		out = append(out, *a.Live)
	}
	return out
}

// Resolve decides which action links a project card shows.
//
// Both side repositories win over everything else. Outside dual-repo mode a
// lone frontend or backend repository wins over githubUrl, so at most one
// repository link is shown. The live demo link is independent of the
// repository outcome. With nothing to link to the card shows Coming Soon.
func Resolve(r ProjectRecord) Actions {
	frontend := present(r.FrontendRepo)
	backend := present(r.BackendRepo)

	hasMultipleRepos := frontend && backend
	hasSingleRepo := present(r.GithubURL)
	hasAnyRepo := hasMultipleRepos || hasSingleRepo || frontend || backend
	hasLive := present(r.LiveURL)

	var a Actions
	switch {
	case hasMultipleRepos:
		a.Split = true
		a.Repos = []Link{
			{Kind: KindFrontend, Label: "Frontend", Href: clean(r.FrontendRepo)},
			{Kind: KindBackend, Label: "Backend", Href: clean(r.BackendRepo)},
		}
	case frontend:
		a.Repos = []Link{{Kind: KindFrontend, Label: "Frontend", Href: clean(r.FrontendRepo)}}
	case backend:
		a.Repos = []Link{{Kind: KindBackend, Label: "Backend", Href: clean(r.BackendRepo)}}
	case hasSingleRepo:
		a.Repos = []Link{{Kind: KindCode, Label: "Code", Href: clean(r.GithubURL)}}
	}

	if hasLive {
		a.Live = &Link{Kind: KindLive, Label: "Live Demo", Href: clean(r.LiveURL)}
	}
	a.ComingSoon = !hasAnyRepo && !hasLive
	return a
}

func clean(link string) string {
	return strings.TrimSpace(link)
}
