package core

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// syntaxSpec is the YAML shape of one transfer-syntax/media-type pairing.
type syntaxSpec struct {
	UID       string `yaml:"uid"`
	MediaType string `yaml:"media_type"`
}

// tableSpec is the YAML shape of one supported-type table. A table defines
// either media_types (set form) or transfer_syntaxes (mapping form).
type tableSpec struct {
	MediaTypes       []string     `yaml:"media_types"`
	TransferSyntaxes []syntaxSpec `yaml:"transfer_syntaxes"`
}

// LoadTables reads supported-type tables keyed by resource kind from a YAML
// document, for servers whose capability set differs from the package-level
// defaults. Every media type named in the document is validated before any
// table is returned.
//
// Example document:
//
//	frames:
//	  transfer_syntaxes:
//	    - uid: 1.2.840.10008.1.2.4.50
//	      media_type: image/jpeg
//	rendered:
//	  media_types: [image/png, image/jpeg]
func LoadTables(reader io.Reader) (map[string]SupportedTypeTable, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading supported-type tables: %w", err)
	}
	specs := make(map[string]tableSpec)
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parsing supported-type tables: %w", err)
	}

	tables := make(map[string]SupportedTypeTable, len(specs))
	for kind, spec := range specs {
		if len(spec.MediaTypes) > 0 && len(spec.TransferSyntaxes) > 0 {
			return nil, fmt.Errorf(
				"table '%s' defines both media_types and transfer_syntaxes", kind,
			)
		}
		if len(spec.TransferSyntaxes) > 0 {
			pairs := make([]SyntaxMapping, 0, len(spec.TransferSyntaxes))
			for _, syntax := range spec.TransferSyntaxes {
				if syntax.UID == "" {
					return nil, fmt.Errorf("table '%s': transfer syntax with empty uid", kind)
				}
				if err := ValidateMediaType(syntax.MediaType); err != nil {
					return nil, fmt.Errorf("table '%s': %w", kind, err)
				}
				pairs = append(pairs, SyntaxMapping{UID: syntax.UID, MediaType: syntax.MediaType})
			}
			tables[kind] = NewSyntaxTable(pairs...)
			continue
		}
		for _, mediaType := range spec.MediaTypes {
			if err := ValidateMediaType(mediaType); err != nil {
				return nil, fmt.Errorf("table '%s': %w", kind, err)
			}
		}
		tables[kind] = NewSupportedTypes(spec.MediaTypes...)
	}
	return tables, nil
}
