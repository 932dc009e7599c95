package tycli

import (
	"fmt"

	"github.com/tyfind/tyfind/internal/ports"
)

// Wire shapes as ty-find prints them with --format json. Positions are
// zero-based on the wire; everything leaving this package is one-based.

type wirePosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type wireRange struct {
	Start *wirePosition `json:"start"`
	End   *wirePosition `json:"end"`
}

type wireLocation struct {
	URI   string     `json:"uri"`
	Range *wireRange `json:"range"`
}

type wireMarkup struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type wireHover struct {
	Contents wireMarkup `json:"contents"`
	Range    *wireRange `json:"range"`
}

type wireSymbolInformation struct {
	Name          string        `json:"name"`
	Kind          int           `json:"kind"`
	Location      *wireLocation `json:"location"`
	ContainerName string        `json:"containerName"`
}

type wireDocumentSymbol struct {
	Name           string               `json:"name"`
	Detail         string               `json:"detail"`
	Kind           int                  `json:"kind"`
	Range          *wireRange           `json:"range"`
	SelectionRange *wireRange           `json:"selectionRange"`
	Children       []wireDocumentSymbol `json:"children"`
}

// toLocation crosses the coordinate boundary: zero-based wire positions
// become the 1-based Location callers see. This is the single place the
// conversion happens; no other code adds or subtracts 1.
func (w wireLocation) toLocation() (ports.Location, error) {
	loc, err := rangeStart(w.URI, w.Range)
	if err != nil {
		return ports.Location{}, err
	}
	return loc, nil
}

func rangeStart(uri string, r *wireRange) (ports.Location, error) {
	if r == nil || r.Start == nil {
		return ports.Location{}, fmt.Errorf("entry for %q has no range.start", uri)
	}
	return ports.Location{
		URI:    uri,
		Line:   r.Start.Line + 1,
		Column: r.Start.Character + 1,
	}, nil
}

func (w wireSymbolInformation) toSymbolInformation() (ports.SymbolInformation, error) {
	if w.Location == nil {
		return ports.SymbolInformation{}, fmt.Errorf("symbol %q has no location", w.Name)
	}
	loc, err := w.Location.toLocation()
	if err != nil {
		return ports.SymbolInformation{}, fmt.Errorf("symbol %q: %v", w.Name, err)
	}
	return ports.SymbolInformation{
		Name:      w.Name,
		Kind:      ports.SymbolKind(w.Kind),
		Container: w.ContainerName,
		Location:  loc,
	}, nil
}

// toDocumentSymbol converts one outline entry and its children. The name
// position comes from selectionRange, falling back to the full range when
// the tool omits it.
func (w wireDocumentSymbol) toDocumentSymbol(uri string) (ports.DocumentSymbol, error) {
	r := w.SelectionRange
	if r == nil {
		r = w.Range
	}
	loc, err := rangeStart(uri, r)
	if err != nil {
		return ports.DocumentSymbol{}, fmt.Errorf("symbol %q: %v", w.Name, err)
	}

	sym := ports.DocumentSymbol{
		Name:     w.Name,
		Detail:   w.Detail,
		Kind:     ports.SymbolKind(w.Kind),
		Location: loc,
	}
	for _, child := range w.Children {
		cs, err := child.toDocumentSymbol(uri)
		if err != nil {
			return ports.DocumentSymbol{}, err
		}
		sym.Children = append(sym.Children, cs)
	}
	return sym, nil
}
