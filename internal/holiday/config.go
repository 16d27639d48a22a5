package holiday

import "os"

// Config holds configuration for the holiday data sources.
type Config struct {
	ServiceKey string
	Endpoint   string
	FileDir    string
}

// DefaultConfig returns a Config pointing at the public data.go.kr host
// with no service key; live lookups stay disabled until a key is set.
func DefaultConfig() Config {
	return Config{
		Endpoint: "https://apis.data.go.kr",
		FileDir:  "public",
	}
}

// LoadConfig reads holiday configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GISU_HOLIDAY_KEY"); v != "" {
		cfg.ServiceKey = v
	}
	if v := os.Getenv("GISU_HOLIDAY_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("GISU_HOLIDAY_DIR"); v != "" {
		cfg.FileDir = v
	}

	return cfg
}
