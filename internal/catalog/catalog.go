// Package catalog loads the food cards a session starts with.
//
// The default catalog is embedded in the binary. A TOML file with the same
// layout can replace it; both go through the same JSON schema check.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jask/foodgallery/internal/gallery"
)

//go:embed catalog.toml
var bundled []byte

//go:embed catalog.schema.json
var schemaJSON string

const schemaURL = "catalog.schema.json"

// Entry is one preloaded card.
type Entry struct {
	Asset       string `toml:"asset"`
	DishName    string `toml:"dish_name"`
	Calories    string `toml:"calories"`
	Ingredients string `toml:"ingredients"`
}

// Catalog is the decoded catalog file.
type Catalog struct {
	Entries []Entry `toml:"card"`
}

// ValidationError points at the first schema violation in a catalog file.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "catalog: " + e.Message
	}
	return fmt.Sprintf("catalog: %s: %s", e.Path, e.Message)
}

// Bundled returns the embedded catalog.
func Bundled() (Catalog, error) {
	return Parse(bundled)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Bundled()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML catalog data.
func Parse(data []byte) (Catalog, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate(raw); err != nil {
		return Catalog{}, err
	}
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return c, nil
}

// Cards builds gallery cards from the entries, each with a new ID.
func (c Catalog) Cards() []gallery.Card {
	out := make([]gallery.Card, 0, len(c.Entries))
	for _, e := range c.Entries {
		out = append(out, gallery.NewCard(gallery.AssetImage(e.Asset), gallery.Fields{
			DishName:    e.DishName,
			Calories:    e.Calories,
			Ingredients: e.Ingredients,
		}))
	}
	return out
}

func validate(raw map[string]any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("load catalog schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	// Round-trip through JSON so the validator sees plain JSON types.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal catalog: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return &ValidationError{Message: err.Error()}
		}
		leaf := firstLeaf(ve)
		return &ValidationError{Path: pointerToPath(leaf.InstanceLocation), Message: leaf.Message}
	}
	return nil
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
