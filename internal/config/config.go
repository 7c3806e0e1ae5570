package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Puerto      string
	DatabaseURL string
	CORSOrigins string
}

var instance *ServerConfig
var once sync.Once

func GetServerConfig() *ServerConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err)
		}

		instance = &ServerConfig{
			Puerto:      getEnv("PORT", "8000"),
			DatabaseURL: getEnv("DATABASE_URL", "gestor_turnos.db"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultVal
}
