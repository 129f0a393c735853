package core

// PageArtifact is one generated page. It is build output: safe to delete and
// regenerate.
type PageArtifact struct {
	Widget  Widget
	Path    string
	Content []byte
}
