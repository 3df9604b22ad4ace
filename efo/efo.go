// Package efo extracts terms, synonyms and subclass relationships from an
// EFO ontology file (RDF/XML) and loads them into the local DuckDB store.
// This is extraction only: no closure, inference or other graph semantics.
package efo

import (
	"encoding/xml"
	"io"
	"log"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Term is one named ontology class.
type Term struct {
	URI        string
	Label      string
	Definition string
}

// Synonym is an exact synonym of a term.
type Synonym struct {
	URI     string
	Synonym string
}

// Relationship links two named classes. Predicate is currently always
// "subClassOf"; anonymous superclass restrictions are skipped.
type Relationship struct {
	Subject   string
	Predicate string
	Object    string
}

// Document is the extracted content of one ontology file.
type Document struct {
	Terms         []Term
	Synonyms      []Synonym
	Relationships []Relationship
}

const (
	rdfNS      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfsNS     = "http://www.w3.org/2000/01/rdf-schema#"
	owlNS      = "http://www.w3.org/2002/07/owl#"
	oboInOwlNS = "http://www.geneontology.org/formats/oboInOwl#"
)

type owlClass struct {
	About       string        `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Labels      []string      `xml:"http://www.w3.org/2000/01/rdf-schema# label"`
	Definitions []string      `xml:"http://www.geneontology.org/formats/oboInOwl# hasDefinition"`
	Synonyms    []string      `xml:"http://www.geneontology.org/formats/oboInOwl# hasExactSynonym"`
	SubClassOf  []rdfResource `xml:"http://www.w3.org/2000/01/rdf-schema# subClassOf"`
}

type rdfResource struct {
	Resource string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# resource,attr"`
}

// ParseOWL streams the RDF/XML at path and collects every named owl:Class.
// Classes without an rdf:about attribute are blank nodes and are skipped,
// as are subClassOf targets that are not named classes.
func ParseOWL(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	doc := &Document{}
	d := xml.NewDecoder(f)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Space != owlNS || se.Name.Local != "Class" {
			continue
		}

		var cls owlClass
		if err := d.DecodeElement(&cls, &se); err != nil {
			return nil, pfx.Err(err)
		}
		if cls.About == "" {
			continue
		}

		term := Term{URI: cls.About}
		if len(cls.Labels) > 0 {
			term.Label = strings.TrimSpace(cls.Labels[0])
		}
		if len(cls.Definitions) > 0 {
			term.Definition = strings.TrimSpace(cls.Definitions[0])
		}
		doc.Terms = append(doc.Terms, term)

		for _, syn := range cls.Synonyms {
			doc.Synonyms = append(doc.Synonyms, Synonym{URI: cls.About, Synonym: strings.TrimSpace(syn)})
		}
		for _, super := range cls.SubClassOf {
			if super.Resource == "" {
				continue
			}
			doc.Relationships = append(doc.Relationships, Relationship{
				Subject:   cls.About,
				Predicate: "subClassOf",
				Object:    super.Resource,
			})
		}
	}

	log.Printf("Parsed %d terms, %d synonyms, %d relationships",
		len(doc.Terms), len(doc.Synonyms), len(doc.Relationships))

	return doc, nil
}
