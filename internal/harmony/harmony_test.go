package harmony

import (
	"errors"
	"testing"

	"github.com/ironsheep/color-spin-mcp/internal/spin"
)

func TestOffsets(t *testing.T) {
	tests := []struct {
		scheme Scheme
		want   []float64
	}{
		{Complementary, []float64{0, 180}},
		{Triadic, []float64{0, 120, 240}},
		{Tetradic, []float64{0, 90, 180, 270}},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			got, err := Offsets(tt.scheme)
			if err != nil {
				t.Fatalf("Offsets failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("offset %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOffsets_ReturnsCopy(t *testing.T) {
	got, _ := Offsets(Triadic)
	got[1] = 999

	again, _ := Offsets(Triadic)
	if again[1] != 120 {
		t.Errorf("scheme offsets were mutated: %v", again)
	}
}

func TestOffsets_Unknown(t *testing.T) {
	_, err := Offsets("pentadic")
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestSchemes(t *testing.T) {
	got := Schemes()
	want := []Scheme{Complementary, Tetradic, Triadic}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scheme %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBuild_Triadic(t *testing.T) {
	p, err := Build("#FF0000", Triadic, false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	if len(p.Swatches) != len(want) {
		t.Fatalf("expected %d swatches, got %d", len(want), len(p.Swatches))
	}
	for i, sw := range p.Swatches {
		if sw.Hex != want[i] {
			t.Errorf("swatch %d: got %s, want %s", i, sw.Hex, want[i])
		}
	}

	if p.Base != "#FF0000" || p.Scheme != Triadic || p.Defaulted {
		t.Errorf("unexpected palette header: %+v", p)
	}
	if p.Swatches[1].RGB != (spin.RGBColor{R: 0, G: 255, B: 0}) {
		t.Errorf("swatch 1 RGB: got %+v", p.Swatches[1].RGB)
	}
	if p.Swatches[2].HSL.H != 240 {
		t.Errorf("swatch 2 hue: got %v, want 240", p.Swatches[2].HSL.H)
	}
}

func TestBuild_Tetradic(t *testing.T) {
	p, err := Build("#3366ff", Tetradic, true)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(p.Swatches) != 4 {
		t.Fatalf("expected 4 swatches, got %d", len(p.Swatches))
	}
	for _, sw := range p.Swatches {
		if want := spin.Spin("#3366ff", sw.Offset); sw.Hex != want {
			t.Errorf("offset %v: got %s, want %s", sw.Offset, sw.Hex, want)
		}
	}
}

func TestBuild_LenientMalformedBase(t *testing.T) {
	p, err := Build("nope", Complementary, false)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !p.Defaulted {
		t.Error("expected Defaulted to be set")
	}
	for _, sw := range p.Swatches {
		if sw.Hex != "#000000" {
			t.Errorf("offset %v: got %s, want #000000", sw.Offset, sw.Hex)
		}
	}
}

func TestBuild_StrictMalformedBase(t *testing.T) {
	_, err := Build("nope", Complementary, true)
	if !errors.Is(err, spin.ErrInvalidHex) {
		t.Errorf("expected ErrInvalidHex, got %v", err)
	}
}

func TestBuild_UnknownScheme(t *testing.T) {
	_, err := Build("#ff0000", "square", false)
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}
