package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	// PractitionerIDKey carries the authenticated clinician's identifier on
	// the request context. Assembly uses it as the Provenance author.
	PractitionerIDKey contextKey = "practitioner_id"
	// DisplayNameKey carries the clinician's display name.
	DisplayNameKey contextKey = "display_name"
)

// Claims is the token payload issued to scribe clients. The practitioner
// identifier is mandatory: every assembled document must name its human
// author.
type Claims struct {
	jwt.RegisteredClaims
	PractitionerID string `json:"practitioner_id"`
	DisplayName    string `json:"display_name"`
}

// Middleware validates HS256 bearer tokens and places the practitioner
// identity on the request context. Requests matching the skipper pass
// through unauthenticated.
func Middleware(signingKey []byte, skipper func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}

			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return signingKey, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			if claims.PractitionerID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token carries no practitioner identity")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, PractitionerIDKey, claims.PractitionerID)
			ctx = context.WithValue(ctx, DisplayNameKey, claims.DisplayName)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// DevMiddleware stamps every request with a fixed development identity so
// local work does not require a token issuer. Never enabled in production;
// config validation rejects the combination.
func DevMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, PractitionerIDKey, "dev-practitioner")
			ctx = context.WithValue(ctx, DisplayNameKey, "Development Clinician")
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// PractitionerID extracts the authenticated practitioner from the request
// context.
func PractitionerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(PractitionerIDKey).(string)
	return id, ok && id != ""
}

// DisplayName extracts the clinician display name, falling back to the
// practitioner identifier.
func DisplayName(ctx context.Context) string {
	if name, ok := ctx.Value(DisplayNameKey).(string); ok && name != "" {
		return name
	}
	id, _ := PractitionerID(ctx)
	return id
}
