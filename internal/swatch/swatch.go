// Package swatch renders colour palettes as PNG strips.
//
// Each swatch becomes a square cell filled with its colour, laid out left to
// right in palette order. Results are returned as base64-encoded PNG for the
// MCP server, or written to disk for the CLI.
package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-spin-mcp/internal/harmony"
)

const (
	// DefaultCellSize is used when Render is given a non-positive size.
	DefaultCellSize = 64
	// MaxCellSize bounds the edge length of one cell in pixels.
	MaxCellSize = 1024
)

// Result contains an encoded swatch strip.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render draws one cellSize x cellSize square per swatch.
func Render(p *harmony.Palette, cellSize int) (image.Image, error) {
	if p == nil || len(p.Swatches) == 0 {
		return nil, fmt.Errorf("palette has no swatches")
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if cellSize > MaxCellSize {
		return nil, fmt.Errorf("cell size %d exceeds maximum %d", cellSize, MaxCellSize)
	}

	canvas := imaging.New(cellSize*len(p.Swatches), cellSize, color.Transparent)
	for i, sw := range p.Swatches {
		fill := color.NRGBA{R: uint8(sw.RGB.R), G: uint8(sw.RGB.G), B: uint8(sw.RGB.B), A: 255}
		cell := imaging.New(cellSize, cellSize, fill)
		canvas = imaging.Paste(canvas, cell, image.Pt(i*cellSize, 0))
	}

	return canvas, nil
}

// Encode converts a rendered strip into a base64 PNG result.
func Encode(img image.Image) (*Result, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes a rendered strip to path as PNG.
func Save(img image.Image, path string) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save swatch: %w", err)
	}
	return nil
}
