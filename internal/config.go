package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`

	HistoryLimit         int           `env:"HISTORY_LIMIT,default=50"`
	DetailMessages       int           `env:"DETAIL_MESSAGES,default=10"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,default=2s"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=2000"`

	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`

	TopicIdleTTL    time.Duration `env:"TOPIC_IDLE_TTL,default=0s"`
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL,default=1m"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=10s"`

	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// DebugPort 0 disables the debug listener.
	DebugHost string `env:"DEBUG_HOST,default=127.0.0.1"`
	DebugPort int    `env:"DEBUG_PORT,default=0"`

	BootstrapAdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.HistoryLimit <= 0 {
		return Config{}, fmt.Errorf("HISTORY_LIMIT must be positive, got %d", config.HistoryLimit)
	}
	if _, err := CharacterRune(config.CharReplacement); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) DebugAddress() string {
	return fmt.Sprintf("%s:%d", c.DebugHost, c.DebugPort)
}

func (c Config) Replacement() rune {
	r, _ := CharacterRune(c.CharReplacement)
	return r
}

func (c Config) CensoredWordList() []string {
	return splitList(c.CensoredWords)
}

func (c Config) AllowedOriginList() []string {
	return splitList(c.AllowedOrigins)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
