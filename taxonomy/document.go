// SPDX-License-Identifier: MIT
// Package: porphyry/taxonomy
//
// document.go — YAML taxonomy documents.
//
// Format:
//
//	name: animals
//	taxa:
//	  - label: substance
//	    children: [body, incorporeal]
//	  - label: body
//	    children: [living, non_living]
//
// The taxa sequence is ordered; Apply walks it top to bottom, so node
// ids are reproducible for a given document.

package taxonomy

import (
	"fmt"
	"io"
	"os"

	"github.com/arborlab/porphyry/arbor"
	"gopkg.in/yaml.v3"
)

// Taxon is one labeled node and its children, in document order.
type Taxon struct {
	Label    string   `yaml:"label"`
	Children []string `yaml:"children"`
}

// Document is a parsed taxonomy file.
type Document struct {
	Name string  `yaml:"name"`
	Taxa []Taxon `yaml:"taxa"`
}

// Load decodes a YAML taxonomy document from r.
// Returns ErrDecode (wrapped) for malformed YAML and ErrEmptyDocument
// for a document with no taxa.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(doc.Taxa) == 0 {
		return nil, ErrEmptyDocument
	}

	return &doc, nil
}

// LoadFile reads and decodes the YAML taxonomy document at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Apply inserts the document's taxa into a, in document order: each
// taxon's label is ensured first, then connected to each child in turn.
// Capacity errors from the graph propagate wrapped.
func (d *Document) Apply(a *arbor.Arbor) error {
	for _, taxon := range d.Taxa {
		if _, err := a.EnsureNode(taxon.Label); err != nil {
			return fmt.Errorf("Apply(%q): %w", d.Name, err)
		}
		for _, child := range taxon.Children {
			if err := a.Connect(taxon.Label, child); err != nil {
				return fmt.Errorf("Apply(%q): %w", d.Name, err)
			}
		}
	}

	return nil
}
