package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds runtime settings. Every key has a default so the server starts without a config file.
type Config struct {
	Server struct {
		Port     string
		Env      string
		LogLevel string
	}
	WebSocket struct {
		MaxMessageSize int64
		PingInterval   time.Duration
		WriteWait      time.Duration
		SendBuffer     int
		RateLimit      float64
		RateBurst      int
		// AllowedOrigins lists browser origins that may open a websocket. Empty means
		// same-origin only, "*" allows any origin.
		AllowedOrigins []string
	}
	Clock struct {
		TickInterval time.Duration
	}
	Hub struct {
		Buffer int
	}
	Auctions []AuctionSeed
}

// AuctionSeed describes one auction created at startup. Amounts are decimal strings.
type AuctionSeed struct {
	ID               int64
	Title            string
	StartingBid      string
	MinimumIncrement string
	Duration         time.Duration
}

var defaultAuctions = []map[string]any{
	{"id": 1, "title": "Vintage Camera", "startingbid": "150", "minimumincrement": "10", "duration": "15m"},
	{"id": 2, "title": "Signed Guitar", "startingbid": "500", "minimumincrement": "25", "duration": "30m"},
	{"id": 3, "title": "Antique Clock", "startingbid": "80", "minimumincrement": "5", "duration": "20m"},
}

// Load reads dir/.env and dir/config.yaml (both optional), then environment
// variables such as SERVER_PORT or CLOCK_TICKINTERVAL.
func Load(dir string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "dev")
	v.SetDefault("server.loglevel", "info")

	v.SetDefault("websocket.maxmessagesize", 4096)
	v.SetDefault("websocket.pinginterval", "30s")
	v.SetDefault("websocket.writewait", "10s")
	v.SetDefault("websocket.sendbuffer", 256)
	v.SetDefault("websocket.ratelimit", 5)
	v.SetDefault("websocket.rateburst", 10)
	v.SetDefault("websocket.allowedorigins", []string{})

	v.SetDefault("clock.tickinterval", "10s")
	v.SetDefault("hub.buffer", 1024)

	v.SetDefault("auctions", defaultAuctions)
}

// Validate checks the settings the server cannot run without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if c.Clock.TickInterval <= 0 {
		return fmt.Errorf("clock.tickinterval must be > 0")
	}
	if c.Hub.Buffer <= 0 {
		return fmt.Errorf("hub.buffer must be > 0")
	}
	if c.WebSocket.SendBuffer <= 0 {
		return fmt.Errorf("websocket.sendbuffer must be > 0")
	}
	if c.WebSocket.MaxMessageSize <= 0 {
		return fmt.Errorf("websocket.maxmessagesize must be > 0")
	}
	if c.WebSocket.PingInterval <= 0 || c.WebSocket.WriteWait <= 0 {
		return fmt.Errorf("websocket.pinginterval and websocket.writewait must be > 0")
	}
	if c.WebSocket.RateLimit <= 0 || c.WebSocket.RateBurst <= 0 {
		return fmt.Errorf("websocket.ratelimit and websocket.rateburst must be > 0")
	}

	seen := make(map[int64]bool, len(c.Auctions))
	for _, a := range c.Auctions {
		if seen[a.ID] {
			return fmt.Errorf("auction %d: duplicate id", a.ID)
		}
		seen[a.ID] = true

		if _, _, err := a.Amounts(); err != nil {
			return err
		}
		if a.Duration <= 0 {
			return fmt.Errorf("auction %d: duration must be > 0", a.ID)
		}
	}
	return nil
}

// Amounts parses the seed's starting bid and increment
func (s AuctionSeed) Amounts() (decimal.Decimal, decimal.Decimal, error) {
	start, err := decimal.NewFromString(s.StartingBid)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("auction %d: invalid startingbid %q: %w", s.ID, s.StartingBid, err)
	}
	if start.IsNegative() {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("auction %d: startingbid must be >= 0", s.ID)
	}

	increment, err := decimal.NewFromString(s.MinimumIncrement)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("auction %d: invalid minimumincrement %q: %w", s.ID, s.MinimumIncrement, err)
	}
	if !increment.IsPositive() {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("auction %d: minimumincrement must be > 0", s.ID)
	}
	return start, increment, nil
}
