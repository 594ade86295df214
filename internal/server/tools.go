package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Base color as #RRGGBB (case-insensitive)",
}

var strictProperty = map[string]interface{}{
	"type":        "boolean",
	"description": "Reject colors that are not #RRGGBB instead of treating them as black",
	"default":     false,
}

var schemeProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"complementary", "triadic", "tetradic"},
	"description": "Harmony scheme (default triadic)",
	"default":     "triadic",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "color_spin",
			Description: "Rotate the hue of a color by an angle in degrees, keeping saturation and lightness. Returns the new color as lowercase #rrggbb.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"degrees": map[string]interface{}{
						"type":        "number",
						"description": "Rotation in degrees. Any value is accepted; negative angles rotate backwards.",
					},
					"strict": strictProperty,
				},
				"required": []string{"color", "degrees"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Show a color as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProperty,
					"strict": strictProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_harmony",
			Description: "Build a color scheme from a base color: complementary (0, 180), triadic (0, 120, 240) or tetradic (0, 90, 180, 270).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProperty,
					"scheme": schemeProperty,
					"strict": strictProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a color scheme as a horizontal strip of square swatches and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":  colorProperty,
					"scheme": schemeProperty,
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge length of each swatch in pixels (default 64, max 1024)",
						"default":     64,
					},
					"strict": strictProperty,
				},
				"required": []string{"color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
