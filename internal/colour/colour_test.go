package colour

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{
			name: "full format with hash",
			hex:  "#1a2b3c",
			want: RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
		{
			name: "full format without hash",
			hex:  "f97e72",
			want: RGB{R: 0xf9, G: 0x7e, B: 0x72},
		},
		{
			name: "shorthand",
			hex:  "#fa0",
			want: RGB{R: 0xff, G: 0xaa, B: 0x00},
		},
		{
			name: "alpha suffix ignored",
			hex:  "#f0eff140",
			want: RGB{R: 0xf0, G: 0xef, B: 0xf1},
		},
		{
			name: "uppercase",
			hex:  "#FEDE5D",
			want: RGB{R: 0xfe, G: 0xde, B: 0x5d},
		},
		{
			name:    "wrong length",
			hex:     "#12345",
			wantErr: true,
		},
		{
			name:    "non-hex characters",
			hex:     "#zzxxyy",
			wantErr: true,
		},
		{
			name:    "empty",
			hex:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Hex -> RGB -> hex must be exact for any normalized input.
	hexes := []string{"#000000", "#ffffff", "#1a1a2e", "#f97e72", "#36f9f6", "#0a0b0c"}

	for _, hex := range hexes {
		rgb, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) returned error: %v", hex, err)
		}
		if got := rgb.Hex(); got != hex {
			t.Errorf("round trip of %q = %q", hex, got)
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{
			name: "pure red",
			rgb:  RGB{R: 255},
			want: HSL{H: 0, S: 100, L: 50},
		},
		{
			name: "pure green",
			rgb:  RGB{G: 255},
			want: HSL{H: 120, S: 100, L: 50},
		},
		{
			name: "pure blue",
			rgb:  RGB{B: 255},
			want: HSL{H: 240, S: 100, L: 50},
		},
		{
			name: "white is achromatic",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: HSL{H: 0, S: 0, L: 100},
		},
		{
			name: "black is achromatic",
			rgb:  RGB{},
			want: HSL{H: 0, S: 0, L: 0},
		},
		{
			name: "mid grey",
			rgb:  RGB{R: 128, G: 128, B: 128},
			want: HSL{H: 0, S: 0, L: 50.19607843137255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			if math.Abs(got.H-tt.want.H) > 1e-9 ||
				math.Abs(got.S-tt.want.S) > 1e-9 ||
				math.Abs(got.L-tt.want.L) > 1e-9 {
				t.Errorf("RGBToHSL(%+v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// HSL round trips are lossy by at most one unit per channel.
	hexes := []string{"#1a1a2e", "#f0eff1", "#fede5d", "#848bbd", "#72f1b8", "#241b2f"}

	for _, hex := range hexes {
		rgb, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) returned error: %v", hex, err)
		}
		back := HSLToRGB(RGBToHSL(rgb))

		if channelDiff(rgb.R, back.R) > 1 || channelDiff(rgb.G, back.G) > 1 || channelDiff(rgb.B, back.B) > 1 {
			t.Errorf("HSL round trip of %s drifted to %s", hex, back.Hex())
		}
	}
}

func channelDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
