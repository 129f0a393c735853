package core

import (
	"sort"
	"strings"
)

// Widget is one widget source file and the names derived from it.
type Widget struct {
	Identifier string
	File       string
	Slug       string
	Title      string
}

// WidgetsFromFiles keeps the file names ending in suffix and derives a Widget
// for each. The result is sorted by file name so that generation order never
// depends on directory listing order.
func WidgetsFromFiles(files []string, suffix string, namer Namer) []Widget {
	names := make([]string, 0, len(files))
	for _, name := range files {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	widgets := make([]Widget, 0, len(names))
	for _, name := range names {
		identifier := strings.TrimSuffix(name, suffix)
		widgets = append(widgets, Widget{
			Identifier: identifier,
			File:       name,
			Slug:       namer.Slug(identifier),
			Title:      namer.Title(identifier),
		})
	}
	return widgets
}

type Collision struct {
	Slug    string
	Widgets []Widget
}

// FindCollisions returns every slug claimed by more than one widget. Widgets
// inside a collision keep processing order, so the last one is the page that
// ends up on disk.
func FindCollisions(widgets []Widget) []Collision {
	bySlug := make(map[string][]Widget)
	var order []string
	for _, w := range widgets {
		if _, ok := bySlug[w.Slug]; !ok {
			order = append(order, w.Slug)
		}
		bySlug[w.Slug] = append(bySlug[w.Slug], w)
	}

	var collisions []Collision
	for _, s := range order {
		if len(bySlug[s]) > 1 {
			collisions = append(collisions, Collision{Slug: s, Widgets: bySlug[s]})
		}
	}
	return collisions
}
