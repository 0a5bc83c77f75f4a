package config

import (
	"os"
	"strings"
)

type Mode string

const (
	// ModeDev re-parses the content directory on every request.
	ModeDev Mode = "dev"
	// ModeProd parses once at first use and caches for the process.
	ModeProd Mode = "prod"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	// ContentDir holds one <subject-id>.md per registered subject.
	ContentDir string

	SessionBackend string // memory|sql
	DBDriver       string // sqlite|postgres
	DBDSN          string

	// RequireAuth gates the session endpoints behind JWT login. Off by
	// default: the quiz surfaces are public like the catalog.
	RequireAuth    bool
	AuthHMACSecret string
	AdminUser      string
	AdminPassHash  string // bcrypt

	CORSOriginsDev  []string
	CORSOriginsProd []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeProd
	}
	return Config{
		Mode:            mode,
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		ContentDir:      envOr("CONTENT_DIR", "./content"),
		SessionBackend:  envOr("SESSION_BACKEND", "memory"),
		DBDriver:        envOr("DB_DRIVER", "sqlite"),
		DBDSN:           envOr("DB_DSN", ""),
		RequireAuth:     envBool("REQUIRE_AUTH", false),
		AuthHMACSecret:  envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:       envOr("ADMIN_USER", "admin"),
		AdminPassHash:   envOr("ADMIN_PASS_HASH", ""),
		CORSOriginsDev:  csvOr("CORS_ORIGINS_DEV", "http://localhost:3000,http://localhost:3010"),
		CORSOriginsProd: csvOr("CORS_ORIGINS_PROD", "https://quiz.mushikui.app"),
	}
}

// CORSOrigins picks the origin list for the active mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeDev {
		return c.CORSOriginsDev
	}
	return c.CORSOriginsProd
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
