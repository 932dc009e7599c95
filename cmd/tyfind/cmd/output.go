package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tyfind/tyfind/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Output formats accepted by --format.
const (
	formatHuman = "human"
	formatJSON  = "json"
	formatCSV   = "csv"
	formatPaths = "paths"
)

// locationJSON is the shape --format json emits for one location.
// Line and column are 1-based.
type locationJSON struct {
	URI    string `json:"uri"`
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func toLocationJSON(locs []ports.Location) []locationJSON {
	out := make([]locationJSON, 0, len(locs))
	for _, loc := range locs {
		out = append(out, locationJSON{URI: loc.URI, Path: loc.Path(), Line: loc.Line, Column: loc.Column})
	}
	return out
}

// formatLocations renders a location list in the configured format.
// noun is the human-format result word: "definition" or "reference".
func formatLocations(locs []ports.Location, noun, queryInfo, format string) (string, error) {
	switch format {
	case formatHuman:
		return formatLocationsHuman(locs, noun, queryInfo), nil
	case formatJSON:
		data, err := json.MarshalIndent(toLocationJSON(locs), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case formatCSV:
		var sb strings.Builder
		sb.WriteString("file,line,column\n")
		for _, loc := range locs {
			sb.WriteString(fmt.Sprintf("%s,%d,%d\n", loc.Path(), loc.Line, loc.Column))
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	case formatPaths:
		paths := make([]string, 0, len(locs))
		for _, loc := range locs {
			paths = append(paths, loc.Path())
		}
		return strings.Join(paths, "\n"), nil
	}
	return "", unknownFormat(format)
}

// formatLocationsHuman renders a numbered list with a trimmed source
// preview under each entry, when the file is readable.
func formatLocationsHuman(locs []ports.Location, noun, queryInfo string) string {
	if len(locs) == 0 {
		return fmt.Sprintf("No %ss found for: %s", noun, queryInfo)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d %s(s) for: %s\n\n", len(locs), noun, queryInfo))

	for i, loc := range locs {
		path := loc.Path()
		sb.WriteString(fmt.Sprintf("%d. %s:%d:%d\n", i+1, path, loc.Line, loc.Column))
		if preview := sourceLine(path, loc.Line); preview != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", preview))
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// sourceLine reads the 1-based line from path, trimmed. Unreadable files
// and out-of-range lines yield "".
func sourceLine(path string, line int) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.Split(string(content), "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}

// formatHover renders hover contents. Only human and json apply: hover
// is prose, not a location table.
func formatHover(h *ports.Hover, queryInfo, format string) (string, error) {
	switch format {
	case formatHuman:
		if h == nil {
			return fmt.Sprintf("No hover information found at %s", queryInfo), nil
		}
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Hover for %s:\n\n", queryInfo))
		sb.WriteString(strings.TrimRight(h.Contents.Value, "\n"))
		if h.Location != nil {
			sb.WriteString(fmt.Sprintf("\n\nDefined at %s:%d:%d", h.Location.Path(), h.Location.Line, h.Location.Column))
		}
		return sb.String(), nil
	case formatJSON:
		if h == nil {
			return "null", nil
		}
		payload := struct {
			Kind     string        `json:"kind"`
			Contents string        `json:"contents"`
			Location *locationJSON `json:"location,omitempty"`
		}{Kind: h.Contents.Kind, Contents: h.Contents.Value}
		if h.Location != nil {
			loc := toLocationJSON([]ports.Location{*h.Location})[0]
			payload.Location = &loc
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case formatCSV, formatPaths:
		return "", fmt.Errorf("format %q does not apply to hover output", format)
	}
	return "", unknownFormat(format)
}

// formatWorkspaceSymbols renders a workspace symbol search result.
func formatWorkspaceSymbols(syms []ports.SymbolInformation, query, format string) (string, error) {
	switch format {
	case formatHuman:
		if len(syms) == 0 {
			return fmt.Sprintf("No symbols found matching '%s'", query), nil
		}
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Found %d symbol(s) matching '%s':\n\n", len(syms), query))
		for _, sym := range syms {
			sb.WriteString(fmt.Sprintf("  %s (%s) %s:%d:%d", sym.Name, sym.Kind, sym.Location.Path(), sym.Location.Line, sym.Location.Column))
			if sym.Container != "" {
				sb.WriteString(fmt.Sprintf("  in %s", sym.Container))
			}
			sb.WriteString("\n")
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	case formatJSON:
		type symbolJSON struct {
			Name      string       `json:"name"`
			Kind      string       `json:"kind"`
			Container string       `json:"container,omitempty"`
			Location  locationJSON `json:"location"`
		}
		out := make([]symbolJSON, 0, len(syms))
		for _, sym := range syms {
			out = append(out, symbolJSON{
				Name:      sym.Name,
				Kind:      sym.Kind.String(),
				Container: sym.Container,
				Location:  toLocationJSON([]ports.Location{sym.Location})[0],
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case formatCSV:
		var sb strings.Builder
		sb.WriteString("name,kind,container,file,line,column\n")
		for _, sym := range syms {
			sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%d,%d\n",
				sym.Name, sym.Kind, sym.Container, sym.Location.Path(), sym.Location.Line, sym.Location.Column))
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	case formatPaths:
		paths := make([]string, 0, len(syms))
		for _, sym := range syms {
			paths = append(paths, sym.Location.Path())
		}
		return strings.Join(paths, "\n"), nil
	}
	return "", unknownFormat(format)
}

// formatOutline renders a document symbol tree.
func formatOutline(syms []ports.DocumentSymbol, file, format string) (string, error) {
	switch format {
	case formatHuman:
		if len(syms) == 0 {
			return fmt.Sprintf("No symbols found in %s", file), nil
		}
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Document outline for %s:\n\n", file))
		writeOutline(&sb, syms, 1)
		return strings.TrimRight(sb.String(), "\n"), nil
	case formatJSON:
		data, err := json.MarshalIndent(outlineJSON(syms), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case formatCSV:
		var sb strings.Builder
		sb.WriteString("name,kind,line,column,parent\n")
		writeOutlineCSV(&sb, syms, "")
		return strings.TrimRight(sb.String(), "\n"), nil
	case formatPaths:
		return "", fmt.Errorf("format %q does not apply to outline output", format)
	}
	return "", unknownFormat(format)
}

func writeOutline(sb *strings.Builder, syms []ports.DocumentSymbol, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, sym := range syms {
		sb.WriteString(fmt.Sprintf("%s%s %s", indent, sym.Kind, sym.Name))
		if sym.Detail != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", sym.Detail))
		}
		sb.WriteString(fmt.Sprintf("  :%d\n", sym.Location.Line))
		writeOutline(sb, sym.Children, depth+1)
	}
}

type outlineNodeJSON struct {
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Kind     string            `json:"kind"`
	Line     int               `json:"line"`
	Column   int               `json:"column"`
	Children []outlineNodeJSON `json:"children,omitempty"`
}

func outlineJSON(syms []ports.DocumentSymbol) []outlineNodeJSON {
	out := make([]outlineNodeJSON, 0, len(syms))
	for _, sym := range syms {
		out = append(out, outlineNodeJSON{
			Name:     sym.Name,
			Detail:   sym.Detail,
			Kind:     sym.Kind.String(),
			Line:     sym.Location.Line,
			Column:   sym.Location.Column,
			Children: outlineJSON(sym.Children),
		})
	}
	return out
}

func writeOutlineCSV(sb *strings.Builder, syms []ports.DocumentSymbol, parent string) {
	for _, sym := range syms {
		sb.WriteString(fmt.Sprintf("%s,%s,%d,%d,%s\n", sym.Name, sym.Kind, sym.Location.Line, sym.Location.Column, parent))
		writeOutlineCSV(sb, sym.Children, sym.Name)
	}
}

// formatActivityStats renders the stats command output.
func formatActivityStats(stats *ports.ActivityStats, workspace string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ tyfind activity%s for %s\n", colorBold, colorReset, workspace))
	sb.WriteString(fmt.Sprintf("  Queries:  %d\n", stats.Total))
	sb.WriteString(fmt.Sprintf("  First:    %s\n", stats.FirstAt.Format(time.DateTime)))
	sb.WriteString(fmt.Sprintf("  Last:     %s\n", stats.LastAt.Format(time.DateTime)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s%-20s %7s %8s %7s %9s%s\n", colorBold, "op", "count", "results", "errors", "avg", colorReset))
	for _, op := range sortedOps(stats.ByOp) {
		s := stats.ByOp[op]
		avg := time.Duration(0)
		if s.Count > 0 {
			avg = s.Duration / time.Duration(s.Count)
		}
		sb.WriteString(fmt.Sprintf("  %s%-20s%s %7d %8d %7d %9s\n",
			colorCyan, op, colorReset, s.Count, s.Results, s.Errors, avg.Round(time.Millisecond)))
	}
	return sb.String()
}

func sortedOps(byOp map[string]ports.OpStats) []string {
	ops := make([]string, 0, len(byOp))
	for op := range byOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func unknownFormat(format string) error {
	return fmt.Errorf("unknown format %q (expected human, json, csv, or paths)", format)
}
