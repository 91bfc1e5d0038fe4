package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// ValidateURL checks that rawURL has the shape of a catalog product page
// https://<host>/game/<platform>/<slug>. No network I/O is performed.
func ValidateURL(rawURL, host string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: empty url", domain.ErrInvalidSource)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSource, err)
	}

	if u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be https: %s", domain.ErrInvalidSource, rawURL)
	}
	if u.Host != host {
		return fmt.Errorf("%w: host must be %s: %s", domain.ErrInvalidSource, host, rawURL)
	}

	parts := strings.Split(u.Path, "/")
	if len(parts) < 4 || parts[1] != "game" || parts[2] == "" || parts[3] == "" {
		return fmt.Errorf("%w: path must be /game/<platform>/<name>: %s", domain.ErrInvalidSource, rawURL)
	}

	return nil
}

// PlatformFromURL derives a display platform from the second path segment
// e.g. /game/nintendo-64/mario-kart-64 -> "Nintendo 64"
func PlatformFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.UNKNOWN_PLATFORM_SEGMENT
	}

	parts := strings.Split(u.Path, "/")
	if len(parts) < 3 || parts[2] == "" {
		return domain.UNKNOWN_PLATFORM_SEGMENT
	}

	return cases.Title(language.English).String(strings.ReplaceAll(parts[2], "-", " "))
}

// productURL builds the catalog page for a product slug or id
func productURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/game/" + path
}

// hostOf returns the host of a base URL, falling back to the catalog default
func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return domain.CATALOG_HOST
	}
	return u.Host
}
