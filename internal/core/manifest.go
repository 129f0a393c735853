package core

import (
	"encoding/json"
	"sort"
)

type RouteEntry struct {
	Slug   string `json:"slug"`
	Widget string `json:"widget"`
	Title  string `json:"title"`
	Page   string `json:"page"`
	Hash   string `json:"hash"`
}

// Manifest indexes the generated routes. It is rebuilt from scratch on every
// run and never read back by the generator.
type Manifest struct {
	Routes []RouteEntry `json:"routes"`
}

// NewManifest builds a manifest from the pages in write order. When two pages
// share a slug the later one wins, matching what is left on disk.
func NewManifest(pages []PageArtifact) *Manifest {
	bySlug := make(map[string]RouteEntry, len(pages))
	for _, p := range pages {
		bySlug[p.Widget.Slug] = RouteEntry{
			Slug:   p.Widget.Slug,
			Widget: p.Widget.Identifier,
			Title:  p.Widget.Title,
			Page:   p.Path,
			Hash:   HashContent(p.Content),
		}
	}

	routes := make([]RouteEntry, 0, len(bySlug))
	for _, entry := range bySlug {
		routes = append(routes, entry)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Slug < routes[j].Slug
	})

	return &Manifest{Routes: routes}
}

func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
