package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	MySQLDSN  string
	RedisAddr string

	GeocoderBaseURL   string
	GeocoderUserAgent string
	GeocoderLimit     int
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	return Env{
		AppAddr: appAddr,
		GinMode: ginMode,

		MySQLDSN:  strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		GeocoderBaseURL:   getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org/search"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "travelmap/1.0 (travel discovery demo)"),
		GeocoderLimit:     getEnvInt("GEOCODER_LIMIT", 5),
	}
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
