package gexf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mincover/core"
)

var (
	// ErrBadDocument - the input is not a usable GEXF document.
	ErrBadDocument = errors.New("gexf: malformed document")
	// ErrNoNodes - the document declares no nodes.
	ErrNoNodes = errors.New("gexf: document has no nodes")
)

// document mirrors the subset of the GEXF schema the loader consumes.
type document struct {
	XMLName xml.Name `xml:"gexf"`
	Graph   struct {
		Nodes []struct {
			ID string `xml:"id,attr"`
		} `xml:"nodes>node"`
		Edges []struct {
			Source string `xml:"source,attr"`
			Target string `xml:"target,attr"`
		} `xml:"edges>edge"`
	} `xml:"graph"`
}

// Parse reads one GEXF document from r and returns it as an undirected
// core.Graph with loops enabled.
// Complexity: O(V + E).
func Parse(r io.Reader) (*core.Graph, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Graph.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	g := core.NewGraph(core.WithLoops())

	for _, n := range doc.Graph.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("%w: node without id", ErrBadDocument)
		}
	}

	for _, e := range doc.Graph.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("%w: edge without source/target", ErrBadDocument)
		}
		if _, err := g.AddEdge(e.Source, e.Target); err != nil {
			// Parallel edges collapse; anything else is fatal.
			if errors.Is(err, core.ErrDuplicateEdge) {
				continue
			}

			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
	}

	return g, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gexf: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
