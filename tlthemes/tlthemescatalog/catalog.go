package tlthemescatalog

import (
	"fmt"
	"slices"
	"strings"

	"oss.terrastruct.com/timeline/tlthemes"
)

var LightCatalog = []tlthemes.Theme{
	NeutralDefault,
	NeutralGrey,
	GrapeSoda,
	Aubergine,
	EvergladeGreen,
	Terminal,
}

var DarkCatalog = []tlthemes.Theme{
	DarkMauve,
}

func Find(id int64) (tlthemes.Theme, bool) {
	for _, theme := range LightCatalog {
		if theme.ID == id {
			return theme, true
		}
	}
	for _, theme := range DarkCatalog {
		if theme.ID == id {
			return theme, true
		}
	}
	return tlthemes.Theme{}, false
}

// FindByName matches names case-insensitively.
func FindByName(name string) (tlthemes.Theme, bool) {
	for _, theme := range slices.Concat(LightCatalog, DarkCatalog) {
		if strings.EqualFold(theme.Name, name) {
			return theme, true
		}
	}
	return tlthemes.Theme{}, false
}

func String() string {
	var s strings.Builder
	s.WriteString("Light:\n")
	for _, t := range LightCatalog {
		s.WriteString(fmt.Sprintf("- %s: %d\n", t.Name, t.ID))
	}
	s.WriteString("Dark:\n")
	for _, t := range DarkCatalog {
		s.WriteString(fmt.Sprintf("- %s: %d\n", t.Name, t.ID))
	}
	return s.String()
}
