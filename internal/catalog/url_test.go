package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "product page", url: "https://www.pricecharting.com/game/nintendo-64/mario-kart-64"},
		{name: "product page with query", url: "https://www.pricecharting.com/game/nintendo-64/mario-kart-64?q=1"},
		{name: "other host", url: "https://example.com/foo", wantErr: true},
		{name: "http scheme", url: "http://www.pricecharting.com/game/nintendo-64/mario-kart-64", wantErr: true},
		{name: "bare host", url: "https://pricecharting.com/game/nintendo-64/mario-kart-64", wantErr: true},
		{name: "console page", url: "https://www.pricecharting.com/console/nintendo-64", wantErr: true},
		{name: "missing slug", url: "https://www.pricecharting.com/game/nintendo-64", wantErr: true},
		{name: "empty slug", url: "https://www.pricecharting.com/game/nintendo-64/", wantErr: true},
		{name: "empty", url: "", wantErr: true},
		{name: "garbage", url: "::not a url", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url, domain.CATALOG_HOST)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSource)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlatformFromURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{url: "https://www.pricecharting.com/game/nintendo-64/mario-kart-64", expected: "Nintendo 64"},
		{url: "https://www.pricecharting.com/game/super-nintendo/super-metroid", expected: "Super Nintendo"},
		{url: "https://www.pricecharting.com/game/playstation-2/okami", expected: "Playstation 2"},
		{url: "https://www.pricecharting.com/game", expected: "unknown"},
		{url: "https://www.pricecharting.com/", expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlatformFromURL(tt.url))
		})
	}
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "catalog.example.com", hostOf("https://catalog.example.com"))
	assert.Equal(t, "127.0.0.1:8080", hostOf("http://127.0.0.1:8080/"))
	assert.Equal(t, domain.CATALOG_HOST, hostOf(""))
}
