package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver     string
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	GeminiAPIKey string
	AMQPURL      string
	OrderQueue   string

	// Seed values for a brand-new daily_statistics row. The old system
	// rolled a random smiles number; here it is explicit config.
	StatSmilesSeed int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBSource:       getEnv("DB_SOURCE", "coffeepos.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(24) * time.Hour,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		OrderQueue:     getEnv("ORDER_QUEUE", "orders.completed"),
		StatSmilesSeed: getEnvInt("STAT_SMILES_SEED", 0),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
