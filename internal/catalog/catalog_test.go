package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/launchpad/internal/domain"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if c.Len() != 10 {
		t.Fatalf("default catalog has %d sites, want 10", c.Len())
	}

	first := c.Sites()[0]
	if first.Name != "Netflix" || first.URL != "https://www.netflix.com" {
		t.Errorf("first site = %+v, want Netflix", first)
	}
	if first.Color.Kind != domain.ColorBuiltInClass {
		t.Errorf("first site color kind = %v, want %v", first.Color.Kind, domain.ColorBuiltInClass)
	}

	hulu, ok := c.Lookup("https://www.hulu.com")
	if !ok {
		t.Fatal("Lookup(hulu) not found")
	}
	if hulu.TextColor != domain.TextBlack {
		t.Errorf("hulu text color = %q, want black", hulu.TextColor)
	}
}

func TestLoaderLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	content := `sites:
  - name: Example
    url: example.com
    color: bg-slate-700
  - url: news.google.com
    color: bg-blue-500
    textColor: BLACK
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sites := c.Sites()
	if len(sites) != 2 {
		t.Fatalf("Load() returned %d sites, want 2", len(sites))
	}
	if sites[0].URL != "https://example.com" {
		t.Errorf("url not normalized: %q", sites[0].URL)
	}
	if sites[0].TextColor != domain.TextWhite {
		t.Errorf("default text color = %q, want white", sites[0].TextColor)
	}
	if sites[1].Name != "Google News" {
		t.Errorf("derived name = %q, want %q", sites[1].Name, "Google News")
	}
	if sites[1].TextColor != domain.TextBlack {
		t.Errorf("text color = %q, want black", sites[1].TextColor)
	}
}

func TestLoaderLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `[[sites]]
name = "Max"
url = "https://play.max.com"
color = "bg-purple-500"
textColor = "white"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !c.Contains("https://play.max.com") {
		t.Error("Contains(max) = false, want true")
	}
}

func TestLoaderRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() should fail for .json")
	}
}

func TestMapErrors(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{name: "empty", file: File{}},
		{name: "only blank urls", file: File{Sites: []Entry{{Name: "x", Color: "c"}}}},
		{name: "missing color", file: File{Sites: []Entry{{URL: "a.com"}}}},
		{
			name: "duplicate after normalization",
			file: File{Sites: []Entry{
				{URL: "a.com", Color: "c"},
				{URL: "https://a.com", Color: "c"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Map(tt.file); err == nil {
				t.Errorf("Map() should have failed")
			}
		})
	}
}

func TestSitesReturnsCopy(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	sites := c.Sites()
	sites[0].Name = "changed"
	if c.Sites()[0].Name != "Netflix" {
		t.Error("Sites() exposed internal slice")
	}
}
