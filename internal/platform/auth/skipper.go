package auth

import "github.com/labstack/echo/v4"

// publicPaths lists endpoints that bypass authentication: infrastructure
// probes that must answer without credentials.
var publicPaths = map[string]bool{
	"/healthz": true,
}

// Skipper returns true for requests whose path should skip authentication.
func Skipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}
