package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-spin-mcp/internal/harmony"
	"github.com/ironsheep/color-spin-mcp/internal/spin"
	"github.com/ironsheep/color-spin-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_spin").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "color_spin":
		return s.handleColorSpin(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_harmony":
		return s.handleColorHarmony(args)
	case "color_swatch":
		return s.handleColorSwatch(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating a missing object as empty.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// decodeColor applies the strict/lenient policy shared by every tool.
func decodeColor(color string, strict bool) (spin.Decoded, error) {
	if strict {
		rgb, err := spin.ParseHex(color)
		if err != nil {
			return spin.Decoded{}, err
		}
		return spin.Decoded{RGB: rgb, Status: spin.Parsed}, nil
	}
	return spin.DecodeHex(color), nil
}

// === Color Handlers ===

type colorSpinArgs struct {
	Color   string   `json:"color"`
	Degrees *float64 `json:"degrees"`
	Strict  bool     `json:"strict"`
}

// SpinResult is returned by the color_spin tool.
type SpinResult struct {
	Input             string  `json:"input"`
	Degrees           float64 `json:"degrees"`
	NormalizedDegrees float64 `json:"normalized_degrees"`
	Result            string  `json:"result"`
	Defaulted         bool    `json:"defaulted"`
}

func (s *Server) handleColorSpin(args json.RawMessage) (interface{}, error) {
	var a colorSpinArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Degrees == nil {
		return nil, fmt.Errorf("missing required argument: degrees")
	}

	decoded, err := decodeColor(a.Color, a.Strict)
	if err != nil {
		return nil, err
	}

	return &SpinResult{
		Input:             a.Color,
		Degrees:           *a.Degrees,
		NormalizedDegrees: spin.NormalizeDegrees(*a.Degrees),
		Result:            spin.Spin(a.Color, *a.Degrees),
		Defaulted:         decoded.Defaulted(),
	}, nil
}

type colorConvertArgs struct {
	Color  string `json:"color"`
	Strict bool   `json:"strict"`
}

// ConvertResult is returned by the color_convert tool.
type ConvertResult struct {
	Hex       string        `json:"hex"`
	RGB       spin.RGBColor `json:"rgb"`
	HSL       spin.HSLColor `json:"hsl"`
	Defaulted bool          `json:"defaulted"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	decoded, err := decodeColor(a.Color, a.Strict)
	if err != nil {
		return nil, err
	}

	return &ConvertResult{
		Hex:       spin.EncodeHex(decoded.RGB),
		RGB:       decoded.RGB,
		HSL:       spin.RGBToHSL(decoded.RGB),
		Defaulted: decoded.Defaulted(),
	}, nil
}

type colorHarmonyArgs struct {
	Color  string `json:"color"`
	Scheme string `json:"scheme"`
	Strict bool   `json:"strict"`
}

func (a *colorHarmonyArgs) scheme() harmony.Scheme {
	if a.Scheme == "" {
		return harmony.Triadic
	}
	return harmony.Scheme(a.Scheme)
}

func (s *Server) handleColorHarmony(args json.RawMessage) (interface{}, error) {
	var a colorHarmonyArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return harmony.Build(a.Color, a.scheme(), a.Strict)
}

type colorSwatchArgs struct {
	colorHarmonyArgs
	CellSize int `json:"cell_size"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	palette, err := harmony.Build(a.Color, a.scheme(), a.Strict)
	if err != nil {
		return nil, err
	}

	img, err := swatch.Render(palette, a.CellSize)
	if err != nil {
		return nil, err
	}
	return swatch.Encode(img)
}
