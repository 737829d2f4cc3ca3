package theme

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type tomlFile struct {
	Themes []tomlTheme `toml:"theme"`
}

type tomlTheme struct {
	Name       string `toml:"name"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Glow       string `toml:"glow"`
}

// LoadFromTOML parses [[theme]] tables into palettes.
//
//	[[theme]]
//	name = "amber"
//	foreground = "#ffb000"
//	background = "#1a1000"
func LoadFromTOML(data []byte) ([]Palette, error) {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: parse TOML: %w", err)
	}
	out := make([]Palette, 0, len(f.Themes))
	for _, t := range f.Themes {
		p := Palette{Name: t.Name, Foreground: t.Foreground, Background: t.Background, Glow: t.Glow}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// RegisterTOML loads palettes from data into r.
func (r *Registry) RegisterTOML(data []byte) error {
	ps, err := LoadFromTOML(data)
	if err != nil {
		return err
	}
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}
