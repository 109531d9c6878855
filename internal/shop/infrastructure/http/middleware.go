package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/shop/internal/pkg/jwt"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/Lexv0lk/shop/internal/shop/i18n"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	authHeaderName     = "Authorization"
	bearerPrefix       = "Bearer "
	languageHeaderName = "hl"
	languageContextKey = "language"
)

// NewLanguageMiddleware stores the response language for later handlers.
func NewLanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := i18n.MatchLanguage(c.GetHeader(languageHeaderName), c.GetHeader("Accept-Language"))
		c.Set(languageContextKey, tag)
		c.Next()
	}
}

func languageOf(c *gin.Context) language.Tag {
	if value, ok := c.Get(languageContextKey); ok {
		if tag, ok := value.(language.Tag); ok {
			return tag
		}
	}

	return i18n.DefaultLanguage
}

// NewActorMiddleware records the operator named by a bearer token as the
// actor of the request. Requests without a token act as the system actor.
func NewActorMiddleware(parser jwt.TokenParser, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.Next()
			return
		}

		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid authorization header"})
			return
		}

		claims, err := parser.ParseToken(secret, strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Request = c.Request.WithContext(domain.WithActor(c.Request.Context(), claims.Username))
		c.Next()
	}
}
