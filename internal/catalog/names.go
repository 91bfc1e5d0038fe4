package catalog

import "strings"

// platformBrandPrefixes are dropped from a platform when the catalog title omits them
// e.g. "Super Mario World Super Nintendo" on platform "Nintendo Super Nintendo"
var platformBrandPrefixes = []string{"Nintendo "}

// nameTrailingCutset is trimmed from extracted game names
const nameTrailingCutset = " -:,"

// StripPlatform removes a platform name the catalog appended to or embedded in a game title.
// Rules are applied in order and only the first match is used:
//  1. the name ends with the platform
//  2. the name ends with the platform minus a brand prefix
//  3. the platform appears anywhere inside the name
func StripPlatform(name, platform string) string {
	name = strings.TrimSpace(name)
	platform = strings.TrimSpace(platform)
	if name == "" || platform == "" || strings.EqualFold(platform, "unknown") {
		return strings.TrimRight(name, nameTrailingCutset)
	}

	switch {
	case strings.HasSuffix(name, platform):
		name = strings.TrimSpace(strings.TrimSuffix(name, platform))
	case brandSuffix(name, platform) != "":
		name = strings.TrimSpace(strings.TrimSuffix(name, brandSuffix(name, platform)))
	case strings.Contains(name, platform):
		name = strings.TrimSpace(strings.ReplaceAll(name, platform, ""))
		name = strings.Join(strings.Fields(name), " ")
	}

	return strings.TrimRight(name, nameTrailingCutset)
}

// brandSuffix returns the brand-stripped platform when name ends with it
func brandSuffix(name, platform string) string {
	for _, prefix := range platformBrandPrefixes {
		if !strings.HasPrefix(platform, prefix) {
			continue
		}
		short := strings.TrimPrefix(platform, prefix)
		if short != "" && strings.HasSuffix(name, short) {
			return short
		}
	}
	return ""
}

var gameNameReplacer = strings.NewReplacer(
	":", "",
	".", "",
	"'", "%27",
	" ", "-",
)

var gameNamePunctuation = strings.NewReplacer(
	"(", "",
	")", "",
	"[", "",
	"]", "",
	"/", "",
	"#", "",
)

// CleanGameName turns a display name into the slug used in catalog URLs
func CleanGameName(name string) string {
	slug := gameNameReplacer.Replace(strings.TrimSpace(strings.ToLower(name)))
	// Two passes collapse runs of up to four hyphens
	slug = strings.ReplaceAll(slug, "--", "-")
	slug = strings.ReplaceAll(slug, "--", "-")
	return strings.TrimSpace(gameNamePunctuation.Replace(slug))
}

// CleanPlatformName turns a display platform into the slug used in catalog URLs
func CleanPlatformName(platform string) string {
	slug := strings.ReplaceAll(strings.ToLower(platform), "new", "")
	return strings.ReplaceAll(strings.TrimSpace(slug), " ", "-")
}
