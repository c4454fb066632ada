package cache

import "strings"

// LayoutKeyOpts holds the packing options that change a layout.
type LayoutKeyOpts struct {
	MaxValue float64 `json:"max_value"`
	Sorted   bool    `json:"sorted"`
}

// ArtifactKeyOpts holds the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Style    string  `json:"style"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Margin   float64 `json:"margin"`
	Outline  bool    `json:"outline"`
	Centroid bool    `json:"centroid"`
	Labels   bool    `json:"labels"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey returns the key for a layout packed from the dataset with
	// the given content hash.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string
	// ArtifactKey returns the key for an artifact rendered from the layout
	// with the given content hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "kind:sha256(parts)".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// keyType extracts the key kind ("layout", "artifact") for hooks. Scoped
// prefixes are skipped.
func keyType(key string) string {
	for _, kind := range []string{"layout", "artifact"} {
		if strings.HasPrefix(key, kind+":") || strings.Contains(key, ":"+kind+":") {
			return kind
		}
	}
	return "other"
}
