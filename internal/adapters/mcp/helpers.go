package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// parseToolArguments validates and extracts the arguments map from an MCP
// tool request. Returns the map or an error result if validation fails.
func parseToolArguments(request mcp.CallToolRequest) (map[string]interface{}, *mcp.CallToolResult) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, mcp.NewToolResultError("invalid arguments format")
	}
	return argsMap, nil
}

// stringArg extracts a required non-empty string parameter.
func stringArg(args map[string]interface{}, name string) (string, *mcp.CallToolResult) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s parameter is required", name))
	}
	return value, nil
}

// intArg extracts a required positive integer parameter. JSON numbers
// arrive as float64.
func intArg(args map[string]interface{}, name string) (int, *mcp.CallToolResult) {
	value, ok := args[name].(float64)
	if !ok || value < 1 {
		return 0, mcp.NewToolResultError(fmt.Sprintf("%s parameter is required and must be >= 1", name))
	}
	return int(value), nil
}

// marshalToolResponse marshals a response object to JSON and returns it
// as an MCP text result.
func marshalToolResponse(response interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
