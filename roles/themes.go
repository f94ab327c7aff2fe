package roles

// Theme selects a display vocabulary for the role tiers. Themes are purely
// cosmetic; nothing in the rules or exchange logic ever reads one.
type Theme string

const (
	ThemeClassic      Theme = "classic"
	ThemePresidential Theme = "presidential"
	ThemeRoyalty      Theme = "royalty"
	ThemeDaifugo      Theme = "daifugo"
	ThemeCorporate    Theme = "corporate"
	ThemeMaritime     Theme = "maritime"
)

var themeLabels = map[Theme][5]string{
	ThemeClassic:      {"President", "Vice President", "Citizen", "Vice Scum", "Scum"},
	ThemePresidential: {"President", "Vice President", "Senator", "Aide", "Intern"},
	ThemeRoyalty:      {"King", "Prince", "Noble", "Peasant", "Serf"},
	ThemeDaifugo:      {"Daifugo", "Fugo", "Heimin", "Hinmin", "Daihinmin"},
	ThemeCorporate:    {"CEO", "Director", "Manager", "Clerk", "Temp"},
	ThemeMaritime:     {"Captain", "First Mate", "Sailor", "Deckhand", "Stowaway"},
}

// Label returns the display label for a tier under a theme. Unknown themes
// fall back to the classic labels.
func Label(t Tier, theme Theme) string {
	labels, ok := themeLabels[theme]
	if !ok {
		labels = themeLabels[ThemeClassic]
	}
	return labels[t]
}

// LabelWithOverrides returns the display label for a tier, preferring a
// custom label when one is configured.
func LabelWithOverrides(t Tier, theme Theme, custom map[Tier]string) string {
	if label, ok := custom[t]; ok {
		return label
	}
	return Label(t, theme)
}
