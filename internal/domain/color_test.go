package domain

import (
	"math"
	"testing"
)

func TestColorFromURL(t *testing.T) {
	tests := []struct {
		url          string
		wantGradient string
		wantText     TextColor
	}{
		{
			url:          "https://example.com",
			wantGradient: "linear-gradient(to bottom right, rgb(38, 116, 217), rgb(95, 38, 217))",
			wantText:     TextWhite,
		},
		{
			url:          "https://news.google.com",
			wantGradient: "linear-gradient(to bottom right, rgb(38, 217, 205), rgb(38, 95, 217))",
			wantText:     TextWhite,
		},
		{
			url:          "https://github.com",
			wantGradient: "linear-gradient(to bottom right, rgb(101, 217, 38), rgb(38, 217, 110))",
			wantText:     TextBlack,
		},
		{
			url:          "https://www.wikipedia.org",
			wantGradient: "linear-gradient(to bottom right, rgb(217, 184, 38), rgb(116, 217, 38))",
			wantText:     TextBlack,
		},
		{
			url:          "https://café.fr",
			wantGradient: "linear-gradient(to bottom right, rgb(217, 80, 38), rgb(217, 214, 38))",
			wantText:     TextBlack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			gradient, text := ColorFromURL(tt.url)
			if gradient != tt.wantGradient {
				t.Errorf("ColorFromURL(%q) gradient = %q, want %q", tt.url, gradient, tt.wantGradient)
			}
			if text != tt.wantText {
				t.Errorf("ColorFromURL(%q) text = %q, want %q", tt.url, text, tt.wantText)
			}
		})
	}
}

func TestColorFromURLDeterministic(t *testing.T) {
	urls := []string{"", "https://example.com", "https://a", "https://日本.jp", "https://www.xbox.com/play"}
	for _, u := range urls {
		g1, t1 := ColorFromURL(u)
		g2, t2 := ColorFromURL(u)
		if g1 != g2 || t1 != t2 {
			t.Errorf("ColorFromURL(%q) not deterministic: (%q,%q) vs (%q,%q)", u, g1, t1, g2, t2)
		}
		if !t1.Valid() {
			t.Errorf("ColorFromURL(%q) text color %q is not black/white", u, t1)
		}
	}
}

func TestURLHash(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "", want: 0},
		{input: "a", want: 97},
		{input: "https://example.com", want: 632849614},
		{input: "https://news.google.com", want: 1133632616},
	}

	for _, tt := range tests {
		if got := urlHash(tt.input); got != tt.want {
			t.Errorf("urlHash(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestURLHashNeverNegative(t *testing.T) {
	// long inputs overflow int32 many times over
	for _, s := range []string{"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", "https://some.very.long.host.name.example.org/with/a/path"} {
		if got := urlHash(s); got < 0 || got > math.MaxInt32+1 {
			t.Errorf("urlHash(%q) = %d, out of range", s, got)
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{name: "red", h: 0, s: 1, l: 0.5, want: RGB{255, 0, 0}},
		{name: "green", h: 1.0 / 3, s: 1, l: 0.5, want: RGB{0, 255, 0}},
		{name: "blue", h: 2.0 / 3, s: 1, l: 0.5, want: RGB{0, 0, 255}},
		{name: "achromatic", h: 0.3, s: 0, l: 0.5, want: RGB{128, 128, 128}},
		{name: "white", h: 0, s: 0, l: 1, want: RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hslToRGB(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("hslToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestContrastFor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want TextColor
	}{
		{name: "white background", hex: "#ffffff", want: TextBlack},
		{name: "black background", hex: "#000000", want: TextWhite},
		{name: "no hash", hex: "eab308", want: TextBlack},
		{name: "uppercase digits", hex: "#EAB308", want: TextBlack},
		{name: "red swatch", hex: "#ef4444", want: TextWhite},
		{name: "green swatch", hex: "#22c55e", want: TextBlack},
		{name: "just under the boundary", hex: "#808080", want: TextWhite},
		{name: "just over the boundary", hex: "#818181", want: TextBlack},
		{name: "short form rejected", hex: "#fff", want: TextWhite},
		{name: "garbage", hex: "not-a-color", want: TextWhite},
		{name: "empty", hex: "", want: TextWhite},
		{name: "sign rejected", hex: "+fffff", want: TextWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastFor(tt.hex); got != tt.want {
				t.Errorf("ContrastFor(%q) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}

func TestTextColorForBoundary(t *testing.T) {
	if got := textColorFor(128); got != TextWhite {
		t.Errorf("textColorFor(128) = %q, want %q", got, TextWhite)
	}
	if got := textColorFor(128.0001); got != TextBlack {
		t.Errorf("textColorFor(128.0001) = %q, want %q", got, TextBlack)
	}
}

func TestContrastForPalette(t *testing.T) {
	for _, hex := range Palette {
		first := ContrastFor(hex)
		if !first.Valid() {
			t.Errorf("ContrastFor(%q) = %q, not black/white", hex, first)
		}
		if again := ContrastFor(hex); again != first {
			t.Errorf("ContrastFor(%q) not deterministic: %q then %q", hex, first, again)
		}
	}
}
