package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSiteMarshalWritesSingleColorField(t *testing.T) {
	tests := []struct {
		name    string
		site    Site
		present string
		absent  []string
	}{
		{
			name:    "builtin class",
			site:    Site{Name: "Hulu", URL: "https://www.hulu.com", Color: BuiltInClass("bg-green"), TextColor: TextBlack},
			present: `"color":"bg-green"`,
			absent:  []string{"gradient", "customColor"},
		},
		{
			name:    "gradient",
			site:    NewCustomSite("Example", "https://example.com"),
			present: `"gradient":"linear-gradient(`,
			absent:  []string{`"color"`, "customColor"},
		},
		{
			name:    "solid",
			site:    NewCustomSite("Example", "https://example.com").WithSolidColor("#eab308"),
			present: `"customColor":"#eab308"`,
			absent:  []string{`"color"`, "gradient"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.site)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			out := string(data)
			if !strings.Contains(out, tt.present) {
				t.Errorf("Marshal() = %s, want it to contain %s", out, tt.present)
			}
			for _, field := range tt.absent {
				if strings.Contains(out, field) {
					t.Errorf("Marshal() = %s, should not contain %s", out, field)
				}
			}
		})
	}
}

func TestSiteUnmarshalPicksOneSource(t *testing.T) {
	raw := `{"name":"X","url":"https://x.io","gradient":"linear-gradient(a, b)","customColor":"#ffffff","textColor":"bogus"}`

	var s Site
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Color.Kind != ColorSolidHex || s.Color.Value != "#ffffff" {
		t.Errorf("Color = %+v, want solid #ffffff", s.Color)
	}
	if s.TextColor != TextBlack {
		t.Errorf("TextColor = %q, want re-derived %q", s.TextColor, TextBlack)
	}
}

func TestSiteUnmarshalWithoutColorDerivesGradient(t *testing.T) {
	var s Site
	if err := json.Unmarshal([]byte(`{"name":"E","url":"https://example.com"}`), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := NewCustomSite("E", "https://example.com")
	if s != want {
		t.Errorf("Unmarshal() = %+v, want %+v", s, want)
	}
}

func TestWithSolidColorReplacesGradient(t *testing.T) {
	s := NewCustomSite("Example", "https://example.com").WithSolidColor("#000000")
	if s.Color.Kind != ColorSolidHex {
		t.Errorf("Color.Kind = %v, want %v", s.Color.Kind, ColorSolidHex)
	}
	if s.TextColor != TextWhite {
		t.Errorf("TextColor = %q, want %q", s.TextColor, TextWhite)
	}
}

func TestSiteUnmarshalRederivesBrowserTextColor(t *testing.T) {
	// browser clients store tailwind classes instead of white/black
	blob := `{"name":"Paper","url":"https://paper.dev","customColor":"#ffffff","textColor":"text-white"}`

	var s Site
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.TextColor != TextBlack {
		t.Errorf("TextColor = %q, want %q", s.TextColor, TextBlack)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"textColor":"black"`) {
		t.Errorf("Marshal() = %s, want textColor black", data)
	}
}
