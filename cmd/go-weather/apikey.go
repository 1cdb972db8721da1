package main

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// apiKeyPath prefers the first command line argument over the configured file
func apiKeyPath(args []string, configured string) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	return configured
}

// loadAPIKey reads the provider key once at startup. An unreadable file is logged and yields an empty key.
func loadAPIKey(path string) string {
	if path == "" {
		log.Warn(msg.GetMessage("config.api-key-failed", path))
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(msg.GetMessage("config.api-key-failed", path), zap.Error(err))
		return ""
	}

	log.Info(msg.GetMessage("config.api-key-loaded", path))
	return strings.TrimSpace(string(data))
}
