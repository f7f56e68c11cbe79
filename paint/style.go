package paint

const currentColour = "currentColor"

type Style struct {
	Bands    Palette
	Temp     string
	Axis     string
	Holiday  string
	Standard string
	FontSize float64

	Level struct {
		Color   string
		Opacity float64
	}
	Hitbox struct {
		Opacity float64
	}
}

func DefaultStyle() Style {
	s := Style{
		Bands:    Tableau10,
		Temp:     "#e15759",
		Axis:     "#999999",
		Holiday:  "#c0392b",
		Standard: "#333333",
		FontSize: 10,
	}
	s.Level.Color = "white"
	s.Level.Opacity = 0.6
	return s
}
