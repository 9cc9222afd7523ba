package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/listadapter/internal/catalog"
	"github.com/charmbracelet/listadapter/internal/config"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/invopop/jsonschema"
)

// usage: go run ./cmd/schema [config|catalog]
func main() {
	target := "config"
	if len(os.Args) > 1 {
		target = os.Args[1]
	}

	schema, err := generate(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating schema: %v\n", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(schema); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding schema: %v\n", err)
		os.Exit(1)
	}
}

func generate(target string) (*jsonschema.Schema, error) {
	var schema *jsonschema.Schema
	switch target {
	case "config":
		r := &jsonschema.Reflector{
			Anonymous:                 true,
			ExpandedStruct:            true,
			AllowAdditionalProperties: true,
		}
		schema = r.Reflect(&config.Config{})
		addThemeEnum(schema)
		schema.Title = "listadapter Configuration"
		schema.Description = "Configuration schema for listadapter"
	case "catalog":
		// Catalogs are YAML, so field names come from the yaml tags.
		r := &jsonschema.Reflector{
			Anonymous:      true,
			ExpandedStruct: true,
			FieldNameTag:   "yaml",
		}
		schema = r.Reflect(&catalog.Document{})
		addKindEnum(schema)
		schema.Title = "listadapter Catalog"
		schema.Description = "Sections and rows shown by listadapter"
	default:
		return nil, fmt.Errorf("unknown schema %q, expected config or catalog", target)
	}
	schema.Version = "https://json-schema.org/draft/2020-12/schema"
	return schema, nil
}

// addThemeEnum limits options.theme to the registered themes.
func addThemeEnum(schema *jsonschema.Schema) {
	var themes []any
	for _, name := range styles.DefaultManager().List() {
		themes = append(themes, name)
	}

	if optionsDef, exists := schema.Definitions["Options"]; exists {
		if themeProp, exists := optionsDef.Properties.Get("theme"); exists {
			themeProp.Enum = themes
			themeProp.Default = styles.DefaultTheme
		}
	}
}

func addKindEnum(schema *jsonschema.Schema) {
	kinds := []any{
		string(catalog.KindText),
		string(catalog.KindDetail),
		string(catalog.KindCode),
		string(catalog.KindNote),
	}

	if entryDef, exists := schema.Definitions["Entry"]; exists {
		if kindProp, exists := entryDef.Properties.Get("kind"); exists {
			kindProp.Enum = kinds
		}
	}
}
