package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// Fallback for local runs only. Production must set JWT_SECRET.
	devSecret = "taskpad-dev-secret"

	defaultRunAddress = ":8080"
	defaultTokenTTL   = 24 * time.Hour
)

type Config struct {
	Env    string
	DB     db
	Server server
	Auth   auth
	Logger logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type auth struct {
	Secret   string        `env:"JWT_SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	secret := viper.GetString("jwt_secret")
	if secret == "" {
		secret = devSecret
	}

	ttl := viper.GetDuration("token_ttl")
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	runAddress := viper.GetString("run_address")
	if runAddress == "" {
		runAddress = defaultRunAddress
	}

	migrations := viper.GetString("migrations_path")
	if migrations == "" {
		migrations = "migrations"
	}

	return &Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  migrations,
		},
		Server: server{RunAddress: runAddress},
		Auth: auth{
			Secret:   secret,
			TokenTTL: ttl,
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}
}
