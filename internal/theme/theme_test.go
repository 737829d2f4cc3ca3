package theme

import (
	"image/color"
	"testing"
)

func TestBuiltinsValid(t *testing.T) {
	r := NewRegistry()
	want := []string{"default", "neon-blue", "neon-green", "neon-red"}
	names := r.Names()
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], n)
		}
		if err := r.Get(n).Validate(); err != nil {
			t.Errorf("builtin %q: %v", n, err)
		}
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		classes []string
		want    string
	}{
		{[]string{"ascii-container"}, "default"},
		{nil, "default"},
		{[]string{"ascii-container", "theme-neon-red"}, "neon-red"},
		{[]string{"ascii-container", "theme-NEON-BLUE"}, "neon-blue"},
		{[]string{"ascii-container", "theme-unknown"}, "default"},
		{[]string{"ascii-container", "theme-"}, "default"},
	}
	for _, tt := range tests {
		if got := r.Lookup(tt.classes).Name; got != tt.want {
			t.Errorf("Lookup(%v) = %q, want %q", tt.classes, got, tt.want)
		}
	}
}

func TestRegisterRejectsBadColor(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Palette{Name: "bad", Foreground: "green", Background: "#000000"}); err == nil {
		t.Error("Register accepted non-hex foreground")
	}
	if err := r.Register(Palette{Foreground: "#ffffff", Background: "#000000"}); err == nil {
		t.Error("Register accepted unnamed palette")
	}
}

func TestRegisterTOML(t *testing.T) {
	r := NewRegistry()
	data := []byte(`
[[theme]]
name = "amber"
foreground = "#ffb000"
background = "#1a1000"

[[theme]]
name = "default"
foreground = "#cccccc"
background = "#111111"
`)
	if err := r.RegisterTOML(data); err != nil {
		t.Fatalf("RegisterTOML: %v", err)
	}
	if got := r.Lookup([]string{"ascii-container", "theme-amber"}); got.Foreground != "#ffb000" {
		t.Errorf("amber foreground = %q", got.Foreground)
	}
	if got := r.Get("default"); got.Background != "#111111" {
		t.Errorf("overridden default background = %q", got.Background)
	}
}

func TestLoadFromTOMLErrors(t *testing.T) {
	if _, err := LoadFromTOML([]byte(`[[theme]`)); err == nil {
		t.Error("accepted malformed TOML")
	}
	if _, err := LoadFromTOML([]byte("[[theme]]\nname = \"x\"\nforeground = \"#12\"\nbackground = \"#000000\"\n")); err == nil {
		t.Error("accepted short hex color")
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#00ff41")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	r, g, b, _ := c.RGBA()
	if r>>8 != 0x00 || g>>8 != 0xff || b>>8 != 0x41 {
		t.Errorf("ParseHex(#00ff41) = %d,%d,%d", r>>8, g>>8, b>>8)
	}
	if _, err := ParseHex("nope"); err == nil {
		t.Error("ParseHex accepted garbage")
	}
	if HexOrBlack("nope") != color.Black {
		t.Error("HexOrBlack fallback is not black")
	}
}
