package i18n

import (
	"strings"

	"github.com/Lexv0lk/shop/internal/shop/domain"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when the request names no supported language.
var DefaultLanguage = language.Uzbek

// Supported languages in the order of the LocalizedName fields. The first
// entry doubles as the matcher fallback.
var Supported = []language.Tag{language.Uzbek, language.Russian, language.English}

var matcher = language.NewMatcher(Supported)

// MatchLanguage resolves the response language from an explicit hl value and,
// failing that, from an Accept-Language header value.
func MatchLanguage(hl string, acceptLanguage string) language.Tag {
	if hl = strings.TrimSpace(hl); hl != "" {
		if tag, err := language.Parse(hl); err == nil {
			if matched, ok := match(tag); ok {
				return matched
			}
		}
	}

	if acceptLanguage = strings.TrimSpace(acceptLanguage); acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			if matched, ok := match(tags...); ok {
				return matched
			}
		}
	}

	return DefaultLanguage
}

func match(tags ...language.Tag) (language.Tag, bool) {
	if len(tags) == 0 {
		return language.Und, false
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}

	return Supported[index], true
}

// ResolveName picks the stored name for tag. Anything that is neither
// Russian nor English gets the primary Uzbek name.
func ResolveName(name domain.LocalizedName, tag language.Tag) string {
	base, _ := tag.Base()

	switch base.String() {
	case "ru":
		return name.Ru
	case "en":
		return name.En
	default:
		return name.Uz
	}
}
