package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tyfind/tyfind/internal/ports"
)

// locationResult is the JSON shape tools use for a single source location.
// Line and column are 1-based, the way editors display them.
type locationResult struct {
	URI    string `json:"uri"`
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type locationsResponse struct {
	File      string           `json:"file,omitempty"`
	Query     string           `json:"query,omitempty"`
	Locations []locationResult `json:"locations"`
	Total     int              `json:"total"`
}

type hoverResponse struct {
	Found    bool            `json:"found"`
	Kind     string          `json:"kind,omitempty"`
	Contents string          `json:"contents,omitempty"`
	Location *locationResult `json:"location,omitempty"`
}

type symbolResult struct {
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Container string         `json:"container,omitempty"`
	Location  locationResult `json:"location"`
}

type symbolsResponse struct {
	Query   string         `json:"query,omitempty"`
	Symbols []symbolResult `json:"symbols"`
	Total   int            `json:"total"`
}

type outlineSymbol struct {
	Name     string          `json:"name"`
	Detail   string          `json:"detail,omitempty"`
	Kind     string          `json:"kind"`
	Line     int             `json:"line"`
	Column   int             `json:"column"`
	Children []outlineSymbol `json:"children,omitempty"`
}

type outlineResponse struct {
	File    string          `json:"file"`
	Symbols []outlineSymbol `json:"symbols"`
	Total   int             `json:"total"`
}

func toLocationResult(loc ports.Location) locationResult {
	return locationResult{
		URI:    loc.URI,
		Path:   loc.Path(),
		Line:   loc.Line,
		Column: loc.Column,
	}
}

func toLocationResults(locs []ports.Location) []locationResult {
	results := make([]locationResult, 0, len(locs))
	for _, loc := range locs {
		results = append(results, toLocationResult(loc))
	}
	return results
}

func toOutlineSymbols(syms []ports.DocumentSymbol) []outlineSymbol {
	if len(syms) == 0 {
		return nil
	}
	out := make([]outlineSymbol, 0, len(syms))
	for _, sym := range syms {
		out = append(out, outlineSymbol{
			Name:     sym.Name,
			Detail:   sym.Detail,
			Kind:     sym.Kind.String(),
			Line:     sym.Location.Line,
			Column:   sym.Location.Column,
			Children: toOutlineSymbols(sym.Children),
		})
	}
	return out
}

// AddDefinitionTool registers the find_definition tool with an MCP server.
func AddDefinitionTool(s *server.MCPServer, finder ports.Finder) {
	tool := mcp.NewTool(
		"find_definition",
		mcp.WithDescription(`Find where the symbol at a cursor position is defined.

Positions are 1-based: line 1 is the first line, column 1 the first
character, matching what editors display. Returns every definition site
as uri/path/line/column; an empty list means the symbol has no known
definition.`),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file to inspect, relative to the workspace or absolute")),
		mcp.WithNumber("line",
			mcp.Required(),
			mcp.Description("1-based line of the cursor position")),
		mcp.WithNumber("column",
			mcp.Required(),
			mcp.Description("1-based column of the cursor position")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createDefinitionHandler(finder))
}

func createDefinitionHandler(finder ports.Finder) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		file, errResult := stringArg(argsMap, "file")
		if errResult != nil {
			return errResult, nil
		}
		line, errResult := intArg(argsMap, "line")
		if errResult != nil {
			return errResult, nil
		}
		column, errResult := intArg(argsMap, "column")
		if errResult != nil {
			return errResult, nil
		}

		locs, err := finder.FindDefinition(ctx, file, line, column)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return marshalToolResponse(&locationsResponse{
			File:      file,
			Locations: toLocationResults(locs),
			Total:     len(locs),
		})
	}
}

// AddSymbolTool registers the find_symbol tool with an MCP server.
func AddSymbolTool(s *server.MCPServer, finder ports.Finder) {
	tool := mcp.NewTool(
		"find_symbol",
		mcp.WithDescription(`Find where a named symbol is defined in a file.

Use when you know the symbol's name but not its position. Returns every
definition site as uri/path/line/column (1-based).`),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file to search, relative to the workspace or absolute")),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Symbol name to look up, e.g. a class or function name")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createSymbolHandler(finder))
}

func createSymbolHandler(finder ports.Finder) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		file, errResult := stringArg(argsMap, "file")
		if errResult != nil {
			return errResult, nil
		}
		symbol, errResult := stringArg(argsMap, "symbol")
		if errResult != nil {
			return errResult, nil
		}

		locs, err := finder.FindSymbol(ctx, file, symbol)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return marshalToolResponse(&locationsResponse{
			File:      file,
			Query:     symbol,
			Locations: toLocationResults(locs),
			Total:     len(locs),
		})
	}
}

// AddHoverTool registers the hover tool with an MCP server.
func AddHoverTool(s *server.MCPServer, finder ports.Finder) {
	tool := mcp.NewTool(
		"hover",
		mcp.WithDescription(`Get type information and documentation for the symbol at a
cursor position (1-based line and column). Returns found=false when the
position has no hover information.`),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file to inspect")),
		mcp.WithNumber("line",
			mcp.Required(),
			mcp.Description("1-based line of the cursor position")),
		mcp.WithNumber("column",
			mcp.Required(),
			mcp.Description("1-based column of the cursor position")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createHoverHandler(finder))
}

func createHoverHandler(finder ports.Finder) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		file, errResult := stringArg(argsMap, "file")
		if errResult != nil {
			return errResult, nil
		}
		line, errResult := intArg(argsMap, "line")
		if errResult != nil {
			return errResult, nil
		}
		column, errResult := intArg(argsMap, "column")
		if errResult != nil {
			return errResult, nil
		}

		h, err := finder.Hover(ctx, file, line, column)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if h == nil {
			return marshalToolResponse(&hoverResponse{Found: false})
		}

		response := &hoverResponse{
			Found:    true,
			Kind:     h.Contents.Kind,
			Contents: h.Contents.Value,
		}
		if h.Location != nil {
			loc := toLocationResult(*h.Location)
			response.Location = &loc
		}
		return marshalToolResponse(response)
	}
}

// AddReferencesTool registers the references tool with an MCP server.
func AddReferencesTool(s *server.MCPServer, finder ports.Finder) {
	tool := mcp.NewTool(
		"references",
		mcp.WithDescription(`Find every place the symbol at a cursor position is used.
Positions are 1-based. Includes the declaration itself.`),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file to inspect")),
		mcp.WithNumber("line",
			mcp.Required(),
			mcp.Description("1-based line of the cursor position")),
		mcp.WithNumber("column",
			mcp.Required(),
			mcp.Description("1-based column of the cursor position")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createReferencesHandler(finder))
}

func createReferencesHandler(finder ports.Finder) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		file, errResult := stringArg(argsMap, "file")
		if errResult != nil {
			return errResult, nil
		}
		line, errResult := intArg(argsMap, "line")
		if errResult != nil {
			return errResult, nil
		}
		column, errResult := intArg(argsMap, "column")
		if errResult != nil {
			return errResult, nil
		}

		locs, err := finder.References(ctx, file, line, column)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return marshalToolResponse(&locationsResponse{
			File:      file,
			Locations: toLocationResults(locs),
			Total:     len(locs),
		})
	}
}

// AddWorkspaceSymbolsTool registers the workspace_symbols tool with an
// MCP server.
func AddWorkspaceSymbolsTool(s *server.MCPServer, finder ports.Finder) {
	tool := mcp.NewTool(
		"workspace_symbols",
		mcp.WithDescription(`Search the whole workspace for symbols matching a query string.
Returns name, kind (class, function, method, ...), container, and
location for each match.`),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Symbol name or fragment to search for")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createWorkspaceSymbolsHandler(finder))
}

func createWorkspaceSymbolsHandler(finder ports.Finder) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		query, errResult := stringArg(argsMap, "query")
		if errResult != nil {
			return errResult, nil
		}

		syms, err := finder.WorkspaceSymbols(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		results := make([]symbolResult, 0, len(syms))
		for _, sym := range syms {
			results = append(results, symbolResult{
				Name:      sym.Name,
				Kind:      sym.Kind.String(),
				Container: sym.Container,
				Location:  toLocationResult(sym.Location),
			})
		}
		return marshalToolResponse(&symbolsResponse{
			Query:   query,
			Symbols: results,
			Total:   len(results),
		})
	}
}

// AddDocumentSymbolsTool registers the document_symbols tool with an
// MCP server.
func AddDocumentSymbolsTool(s *server.MCPServer, finder ports.Finder) {
	tool := mcp.NewTool(
		"document_symbols",
		mcp.WithDescription(`Outline a file: every class, function, and method it defines,
as a tree with 1-based positions.`),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Source file to outline")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createDocumentSymbolsHandler(finder))
}

func createDocumentSymbolsHandler(finder ports.Finder) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		file, errResult := stringArg(argsMap, "file")
		if errResult != nil {
			return errResult, nil
		}

		syms, err := finder.DocumentSymbols(ctx, file)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		symbols := toOutlineSymbols(syms)
		if symbols == nil {
			symbols = []outlineSymbol{}
		}
		return marshalToolResponse(&outlineResponse{
			File:    file,
			Symbols: symbols,
			Total:   len(syms),
		})
	}
}
