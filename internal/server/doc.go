// Package server implements the MCP (Model Context Protocol) server for colour spin tools.
//
// This package provides a JSON-RPC 2.0 server that exposes hue rotation and
// colour harmony operations through the MCP protocol, so MCP-compatible
// clients can derive colours from a base colour without doing HSL maths
// themselves.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - color_spin: Rotate a colour's hue by an angle
//   - color_convert: Show a colour as hex, RGB and HSL
//   - color_harmony: Build a complementary, triadic or tetradic palette
//   - color_swatch: Render a palette as a base64 PNG strip
//
// # Malformed Colours
//
// By default a colour that is not "#RRGGBB" is treated as black and the
// result carries "defaulted": true. Passing "strict": true turns that into a
// tool execution error instead.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
