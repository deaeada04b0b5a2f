package colour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestValidateCMYKComponent(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "one", in: 1, want: 1},
		{name: "inside", in: 0.42, want: 0.42},
		{name: "negative", in: -0.1, want: 0},
		{name: "negative zero", in: math.Copysign(0, -1), want: 0},
		{name: "above one", in: 1.5, want: 1},
		{name: "infinity", in: math.Inf(1), want: 1},
		{name: "not a number", in: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCMYKComponent(tt.in)
			if got != tt.want || math.Signbit(got) {
				t.Errorf("ValidateCMYKComponent(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBToCMYK(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	tests := []struct {
		name string
		rgb  RGB
		want CMYK
	}{
		{name: "black", rgb: RGB{}, want: CMYK{C: 0, M: 0, Y: 0, K: 1}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: CMYK{}},
		{name: "red", rgb: RGB{R: 255}, want: CMYK{M: 1, Y: 1}},
		{name: "green", rgb: RGB{G: 255}, want: CMYK{C: 1, Y: 1}},
		{name: "blue", rgb: RGB{B: 255}, want: CMYK{C: 1, M: 1}},
		{
			name: "half grey",
			rgb:  RGB{R: 51, G: 51, B: 51},
			want: CMYK{K: 0.8},
		},
		{
			name: "mixed",
			rgb:  RGB{R: 255, G: 0, B: 128},
			want: CMYK{C: 0, M: 1, Y: 127.0 / 255, K: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToCMYK(tt.rgb)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("RGBToCMYK(%v) mismatch (-want +got):\n%s", tt.rgb, diff)
			}
		})
	}
}

func TestRGBToCMYKPureBlackIsExact(t *testing.T) {
	got := RGBToCMYK(RGB{})
	for i, v := range got.Components() {
		if math.IsNaN(v) {
			t.Fatalf("component %d is NaN", i)
		}
	}
	if got != (CMYK{K: 1}) {
		t.Errorf("RGBToCMYK(black) = %+v, want exactly {0 0 0 1}", got)
	}
}

func TestRGBToCMYKPureWhiteIsExact(t *testing.T) {
	if got := RGBToCMYK(RGB{R: 255, G: 255, B: 255}); got != (CMYK{}) {
		t.Errorf("RGBToCMYK(white) = %+v, want exactly {0 0 0 0}", got)
	}
}

func TestCMYKToRGB(t *testing.T) {
	tests := []struct {
		name string
		cmyk CMYK
		want RGB
	}{
		{name: "no ink", cmyk: CMYK{}, want: RGB{R: 255, G: 255, B: 255}},
		{name: "full black", cmyk: CMYK{K: 1}, want: RGB{}},
		{name: "black overrides inks", cmyk: CMYK{C: 0.3, M: 0.6, Y: 0.9, K: 1}, want: RGB{}},
		{name: "cyan", cmyk: CMYK{C: 1}, want: RGB{G: 255, B: 255}},
		{name: "magenta", cmyk: CMYK{M: 1}, want: RGB{R: 255, B: 255}},
		{name: "yellow", cmyk: CMYK{Y: 1}, want: RGB{R: 255, G: 255}},
		// (1-0.5)*255 = 127.5 rounds half away from zero.
		{name: "half rounds up", cmyk: CMYK{C: 0.5, M: 0.5, Y: 0.5}, want: RGB{R: 128, G: 128, B: 128}},
		{name: "half black", cmyk: CMYK{K: 0.5}, want: RGB{R: 128, G: 128, B: 128}},
		{name: "ink above one clamps", cmyk: CMYK{C: 2}, want: RGB{G: 255, B: 255}},
		{name: "negative ink clamps", cmyk: CMYK{C: -1}, want: RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CMYKToRGB(tt.cmyk); got != tt.want {
				t.Errorf("CMYKToRGB(%+v) = %+v, want %+v", tt.cmyk, got, tt.want)
			}
		})
	}
}

func TestRGBToCMYKRoundTripScenario(t *testing.T) {
	rgb := RGB{R: 12, G: 34, B: 56}
	cmyk := RGBToCMYK(rgb)

	wantK := 1 - 56.0/255
	if math.Abs(cmyk.K-wantK) > 1e-12 {
		t.Errorf("K = %v, want %v", cmyk.K, wantK)
	}
	if cmyk.Y != 0 {
		t.Errorf("Y = %v, want 0 for the lightest channel", cmyk.Y)
	}
	if got := CMYKToRGB(cmyk); got != rgb {
		t.Errorf("CMYKToRGB(RGBToCMYK(%v)) = %v", rgb, got)
	}
}

func TestRGBToCMYKRoundTripIsExact(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 5
	}
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				cmyk := RGBToCMYK(rgb)
				for i, v := range cmyk.Components() {
					if v < 0 || v > 1 || math.IsNaN(v) {
						t.Fatalf("RGBToCMYK(%v) component %d = %v out of [0,1]", rgb, i, v)
					}
				}
				if got := CMYKToRGB(cmyk); got != rgb {
					t.Fatalf("CMYKToRGB(RGBToCMYK(%v)) = %v", rgb, got)
				}
			}
		}
	}
}

func TestNewCMYK(t *testing.T) {
	got := NewCMYK(math.NaN(), -2, 0.25, 7)
	want := CMYK{C: 0, M: 0, Y: 0.25, K: 1}
	if got != want {
		t.Errorf("NewCMYK() = %+v, want %+v", got, want)
	}
}

func TestCMYKString(t *testing.T) {
	c := CMYK{C: 0.5, M: 0.25, Y: 1, K: 0}
	if got, want := c.String(), "cmyk(0.500, 0.250, 1.000, 0.000)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormatCMYK(t *testing.T) {
	tests := []struct {
		name    string
		cmyk    CMYK
		percent bool
		want    [4]string
	}{
		{
			name:    "percent",
			cmyk:    CMYK{C: 0.5, M: 0.25, Y: 1, K: 0},
			percent: true,
			want:    [4]string{"50 %", "25 %", "100 %", "0 %"},
		},
		{
			name: "fixed",
			cmyk: CMYK{C: 0.5, M: 0.25, Y: 1, K: 0},
			want: [4]string{"0.500", "0.250", "1.000", "0.000"},
		},
		{
			name:    "percent rounds",
			cmyk:    CMYK{C: 0.125, M: 0.994, Y: 0.005, K: 1.0 / 3},
			percent: true,
			want:    [4]string{"13 %", "99 %", "1 %", "33 %"},
		},
		{
			name: "fixed keeps trailing zeros and never uses exponent",
			cmyk: CMYK{C: 1e-9, M: 0.1, Y: 0.12345, K: 2.0 / 3},
			want: [4]string{"0.000", "0.100", "0.123", "0.667"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCMYK(tt.cmyk, tt.percent)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FormatCMYK() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
