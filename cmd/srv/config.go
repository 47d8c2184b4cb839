package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/missionforge/backend/config"
)

func (s *srv) loadConfig() {
	s.configs = config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "missionforge"),
			User:     getEnv("MYSQL_USER", "missionforge"),
			Password: getEnv("MYSQL_PASSWORD", "secret"),
		},
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", "localhost"),
			Port: getEnv("PORT", "8080"),
			Cert: getEnv("SERVER_CERT", ""),
			Key:  getEnv("SERVER_KEY", ""),

			MaxLimit:     getEnvInt("API_MAX_LIMIT", 50),
			DefaultLimit: getEnvInt("API_DEFAULT_LIMIT", 10),

			AllowCORS: getEnvList("ALLOW_CORS", "http://localhost:3000"),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token-secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvDuration("ACCESS_TOKEN_DURATION", time.Hour),
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: getEnvDuration("REFRESH_TOKEN_DURATION", 24*time.Hour),
			},
			AdminAddresses: getEnvList("ADMIN_ADDRESSES", ""),
		},
		Session: config.SessionConfigs{
			Secret: getEnv("AUTH_SESSION_SECRET", "session-secret"),
			Name:   "auth_session",
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Search: config.SearchConfigs{
			IndexDir: getEnv("SEARCH_INDEX_DIR", "searchindex"),
		},
		Mission: config.MissionConfigs{
			PrivilegedCreators: getEnvList("PRIVILEGED_CREATORS", ""),
			MaxTaskLinks:       getEnvInt("MISSION_MAX_TASK_LINKS", 10),
		},
	}

	// A config file overrides the environment, mainly used to keep the
	// address allow-lists in one reviewable place.
	if file := getEnv("CONFIG_FILE", ""); file != "" {
		if _, err := toml.DecodeFile(file, &s.configs); err != nil {
			panic(err)
		}
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		panic(err)
	}

	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}

	return d
}

func getEnvList(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
