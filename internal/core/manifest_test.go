package core

import (
	"bytes"
	"encoding/json"
	"testing"
)

func routeFor(m *Manifest, slug string) (RouteEntry, bool) {
	for _, entry := range m.Routes {
		if entry.Slug == slug {
			return entry, true
		}
	}
	return RouteEntry{}, false
}

func artifact(identifier string, content string) PageArtifact {
	w := Widget{Identifier: identifier, File: identifier + ".tsx", Slug: Slug(identifier), Title: Title(identifier)}
	return PageArtifact{Widget: w, Path: PagePath("src/pages", w.Slug, ".astro"), Content: []byte(content)}
}

func TestNewManifestSortedBySlug(t *testing.T) {
	m := NewManifest([]PageArtifact{
		artifact("SgTaxCalculator", "tax"),
		artifact("EinopsViz", "einops"),
		artifact("CircleImageCropper", "crop"),
	})

	want := []string{"circle-image-cropper", "einops-viz", "sg-tax-calculator"}
	if len(m.Routes) != len(want) {
		t.Fatalf("len(Routes) = %d, want %d", len(m.Routes), len(want))
	}
	for i, slug := range want {
		if m.Routes[i].Slug != slug {
			t.Errorf("Routes[%d].Slug = %q, want %q", i, m.Routes[i].Slug, slug)
		}
	}

	entry, ok := routeFor(m, "einops-viz")
	if !ok {
		t.Fatal("route einops-viz not found")
	}
	if entry.Widget != "EinopsViz" || entry.Title != "Einops Viz" || entry.Page != "src/pages/einops-viz.astro" {
		t.Errorf("route einops-viz = %+v", entry)
	}
	if entry.Hash != HashContent([]byte("einops")) {
		t.Errorf("Hash = %q, want hash of page content", entry.Hash)
	}
}

func TestNewManifestLastWriteWins(t *testing.T) {
	m := NewManifest([]PageArtifact{artifact("Foobar", "first"), artifact("foobar", "second")})

	if len(m.Routes) != 1 {
		t.Fatalf("len(Routes) = %d, want 1", len(m.Routes))
	}
	if m.Routes[0].Widget != "foobar" {
		t.Errorf("Routes[0].Widget = %q, want %q", m.Routes[0].Widget, "foobar")
	}
}

func TestManifestEncodeStable(t *testing.T) {
	pages := []PageArtifact{artifact("EinopsViz", "a"), artifact("SgTaxCalculator", "b")}

	first, err := NewManifest(pages).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	second, err := NewManifest(pages).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Encode() not stable:\n%s\n%s", first, second)
	}

	var parsed Manifest
	if err := json.Unmarshal(first, &parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := routeFor(&parsed, "sg-tax-calculator"); !ok {
		t.Error("decoded manifest lost sg-tax-calculator")
	}
}

func TestHashContent(t *testing.T) {
	a := HashContent([]byte("page"))
	if len(a) != 12 {
		t.Errorf("HashContent() length = %d, want 12", len(a))
	}
	if a != HashContent([]byte("page")) {
		t.Error("HashContent() not deterministic")
	}
	if a == HashContent([]byte("page!")) {
		t.Error("HashContent() collided on different input")
	}
}
