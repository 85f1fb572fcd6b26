package catalog

// File is the on-disk catalog layout, shared by the YAML and TOML readers.
//
// YAML:
//
//	sites:
//	  - name: Netflix
//	    url: https://www.netflix.com
//	    color: bg-red
//	    textColor: white
//
// TOML:
//
//	[[sites]]
//	name = "Netflix"
//	url = "https://www.netflix.com"
//	color = "bg-red"
//	textColor = "white"
type File struct {
	Sites []Entry `yaml:"sites" toml:"sites"`
}

// Entry is one built-in site as written in the catalog file.
type Entry struct {
	Name      string `yaml:"name" toml:"name"`
	URL       string `yaml:"url" toml:"url"`
	Color     string `yaml:"color" toml:"color"`
	TextColor string `yaml:"textColor" toml:"textColor"`
}
