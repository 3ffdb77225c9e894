package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Local Environment = "local"
)

func IsLocal() bool {
	return GetEnvironment() == Local
}

func GetEnvironment() Environment {
	return Environment(os.Getenv("ENVIRONMENT"))
}

// Load reads .env files into the process environment for local
// development. Values already present in the environment win.
func Load(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func Get(key string) string {
	return os.Getenv(key)
}

func GetOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if strings.TrimSpace(val) == "" {
		panic(fmt.Errorf("environment variable for '%s' has not been set", key))
	}
	return val
}
