package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures everything main needs to wire the site.
type Server struct {
	Addr          string
	LogLevel      slog.Level
	TemplatesGlob string

	// FrameRate is the tick rate of server-side frame streams.
	FrameRate int
	// StreamMaxWidth and StreamMaxHeight clamp the viewport a stream client may request.
	StreamMaxWidth  int
	StreamMaxHeight int

	// ParticleSeed seeds the particle field; zero means time based.
	ParticleSeed int64
	// MutedForeground is the theme token the ambient canvas paints with.
	MutedForeground string

	ContactDelay time.Duration
}

// DefaultContactDelay matches the simulated round trip of the contact form.
const DefaultContactDelay = 2 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Server{
		Addr:            ":" + port,
		LogLevel:        parseLevel(os.Getenv("LOG_LEVEL")),
		TemplatesGlob:   envString("TEMPLATES_GLOB", "templates/*"),
		FrameRate:       envInt("FRAME_RATE", 30),
		StreamMaxWidth:  envInt("STREAM_MAX_WIDTH", 1280),
		StreamMaxHeight: envInt("STREAM_MAX_HEIGHT", 800),
		ParticleSeed:    int64(envInt("PARTICLE_SEED", 0)),
		MutedForeground: envString("MUTED_FOREGROUND", "215.4 16.3% 46.9%"),
		ContactDelay:    envDuration("CONTACT_DELAY", DefaultContactDelay),
	}
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
