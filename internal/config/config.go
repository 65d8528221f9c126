package config

import "os"

const defaultPort = "8000"

// Config is read once at startup and passed down explicitly; nothing
// reads the environment after Load returns.
type Config struct {
	Port         string
	RapidAPIKey  string
	DatabaseURL  string
	DatabaseName string
}

// Load reads the process environment. RAPID_API_KEY is accepted as an
// alias for RAPIDAPI_KEY.
func Load() Config {
	key := os.Getenv("RAPIDAPI_KEY")
	if key == "" {
		key = os.Getenv("RAPID_API_KEY")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return Config{
		Port:         port,
		RapidAPIKey:  key,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}
}
