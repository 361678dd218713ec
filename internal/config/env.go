package config

import (
	"os"
	"strconv"
	"strings"
)

// Env holds process configuration loaded once at startup.
type Env struct {
	AppAddr string
	GinMode string

	CORSAllowedOrigins []string

	// StateBackend selects the snapshot store: file, mysql or memory.
	StateBackend string
	StateDir     string
	DBDSN        string

	StripeSecretKey      string
	StripePublishableKey string

	SessionSecret string

	// SeatSeed fixes the seat-map RNG when non-zero. Zero means
	// time-seeded, i.e. occupancy re-rolls on every render.
	SeatSeed int64
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("STATE_BACKEND")))
	switch backend {
	case "file", "mysql", "memory":
	default:
		backend = "file"
	}

	stateDir := strings.TrimSpace(os.Getenv("STATE_DIR"))
	if stateDir == "" {
		stateDir = "data"
	}

	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	var origins []string
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	var seatSeed int64
	if raw := strings.TrimSpace(os.Getenv("SEAT_SEED")); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seatSeed = v
		}
	}

	return Env{
		AppAddr:              appAddr,
		GinMode:              strings.TrimSpace(os.Getenv("GIN_MODE")),
		CORSAllowedOrigins:   origins,
		StateBackend:         backend,
		StateDir:             stateDir,
		DBDSN:                strings.TrimSpace(os.Getenv("DB_DSN")),
		StripeSecretKey:      strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		StripePublishableKey: strings.TrimSpace(os.Getenv("STRIPE_PUBLISHABLE_KEY")),
		SessionSecret:        secret,
		SeatSeed:             seatSeed,
	}
}
