package adapters

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"
	"github.com/rs/zerolog/log"
)

// normalizeVersion canonicalizes an installed version. Both pacman and dpkg
// use the [epoch:]upstream[-revision] shape; anything that does not parse is
// kept verbatim.
func normalizeVersion(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		log.Debug().Str("version", value).Err(err).Msg("keeping unparsed package version")
		return value
	}
	return parsed.String()
}
