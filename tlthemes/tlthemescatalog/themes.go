package tlthemescatalog

import "oss.terrastruct.com/timeline/tlthemes"

var NeutralDefault = tlthemes.Theme{
	ID:   0,
	Name: "Neutral Default",
	Colors: tlthemes.ColorPalette{
		Progress:    "#0D32B2",
		Stroke:      "#E3E9FD",
		Title:       "#0A0F25",
		Description: "#676C7E",
		Background:  "#FFFFFF",
	},
}

var NeutralGrey = tlthemes.Theme{
	ID:   1,
	Name: "Neutral Grey",
	Colors: tlthemes.ColorPalette{
		Progress:    "#676C7E",
		Stroke:      "#CFD2DD",
		Title:       "#0A0F25",
		Description: "#676C7E",
		Background:  "#FFFFFF",
	},
}

var GrapeSoda = tlthemes.Theme{
	ID:   6,
	Name: "Grape Soda",
	Colors: tlthemes.ColorPalette{
		Progress:    "#7639C5",
		Stroke:      "#C1A2F3",
		Title:       "#170034",
		Description: "#676C7E",
		Background:  "#FFFFFF",
	},
}

var Aubergine = tlthemes.Theme{
	ID:   7,
	Name: "Aubergine",
	Colors: tlthemes.ColorPalette{
		Progress:    "#7639C5",
		Stroke:      "#D0B9F5",
		Title:       "#170034",
		Description: "#0F66B7",
		Background:  "#FFFFFF",
	},
}

var EvergladeGreen = tlthemes.Theme{
	ID:   104,
	Name: "Everglade Green",
	Colors: tlthemes.ColorPalette{
		Progress:    "#0D9488",
		Stroke:      "#CBD5E1",
		Title:       "#0F172A",
		Description: "#475569",
	},
}

var Terminal = tlthemes.Theme{
	ID:   300,
	Name: "Terminal",
	Colors: tlthemes.ColorPalette{
		Progress:    "#0000E4",
		Stroke:      "#5AA4DC",
		Title:       "#000410",
		Description: "#0000B8",
		Background:  "#FFFFFF",
	},
	Rules: tlthemes.SpecialRules{
		Mono:           true,
		NoCornerRadius: true,
	},
}

var DarkMauve = tlthemes.Theme{
	ID:   200,
	Name: "Dark Mauve",
	Colors: tlthemes.ColorPalette{
		Progress:    "#CBA6F7",
		Stroke:      "#585B70",
		Title:       "#CDD6F4",
		Description: "#BAC2DE",
		Background:  "#1E1E2E",
	},
}
