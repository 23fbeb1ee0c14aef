package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ProviderModeMock    = "mock"
	ProviderModeAmadeus = "amadeus"
	ProviderModeReplay  = "replay"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Log      LogConfig      `yaml:"log"`
	HTTP     HTTPConfig     `yaml:"http"`
	Search   SearchConfig   `yaml:"search"`
	Provider ProviderConfig `yaml:"provider"`
	Mock     MockConfig     `yaml:"mock"`
	Cache    CacheConfig    `yaml:"cache"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type SearchConfig struct {
	Timeout            time.Duration `yaml:"timeout" env:"SEARCH_TIMEOUT" env-default:"30s"`
	WeekdayConcurrency int           `yaml:"weekday_concurrency" env:"WEEKDAY_CONCURRENCY" env-default:"1"`
	KnownAirportsOnly  bool          `yaml:"known_airports_only" env:"SEARCH_KNOWN_AIRPORTS_ONLY" env-default:"false"`
}

type ProviderConfig struct {
	Mode    string        `yaml:"mode" env:"PROVIDER_MODE" env-default:"mock"`
	Amadeus AmadeusConfig `yaml:"amadeus"`
}

type AmadeusConfig struct {
	BaseURL           string        `yaml:"base_url" env:"AMADEUS_BASE_URL" env-default:"https://test.api.amadeus.com"`
	ClientID          string        `yaml:"client_id" env:"AMADEUS_CLIENT_ID"`
	ClientSecret      string        `yaml:"client_secret" env:"AMADEUS_CLIENT_SECRET"`
	Timeout           time.Duration `yaml:"timeout" env:"AMADEUS_TIMEOUT" env-default:"10s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"AMADEUS_RPS" env-default:"10"`
	Burst             int           `yaml:"burst" env:"AMADEUS_BURST" env-default:"1"`
}

type MockConfig struct {
	// Zero seeds from the clock.
	Seed int64 `yaml:"seed" env:"MOCK_SEED" env-default:"0"`
}

type CacheConfig struct {
	Enabled  bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"false"`
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"5m"`
}

// MustLoad reads the file named by -config or CONFIG_PATH, or the
// environment alone when neither is set.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		return MustLoadFromEnv()
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}
	return &cfg
}

func MustLoadFromEnv() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read the config from env: " + err.Error())
	}
	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
