package theme

func builtins() []Palette {
	return []Palette{
		{Name: "default", Foreground: "#00ff41", Background: "#000000"},
		{Name: "neon-green", Foreground: "#39ff14", Background: "#000000", Glow: "#0b3d02"},
		{Name: "neon-red", Foreground: "#ff073a", Background: "#000000", Glow: "#3d0210"},
		{Name: "neon-blue", Foreground: "#1f51ff", Background: "#000000", Glow: "#06154a"},
	}
}
