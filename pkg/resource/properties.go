package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

var defaults = map[string]any{
	"app.name":                         "go-weather",
	"app.server.port":                  "9000",
	"app.server.context-path":          "",
	"app.server.static-dir":            "public",
	"app.server.documentation-path":    "documentation/README.pdf",
	"app.weather.base-url":             "https://api.weatherapi.com",
	"app.weather.api-key-file":         "",
	"app.weather.timeout":              "10s",
	"app.weather.breaker.max-requests": 5,
	"app.weather.breaker.interval":     "1m",
	"app.weather.breaker.timeout":      "30s",
	"app.weather.breaker.failures":     5,
	"app.favorites.backend":            "csv",
	"app.favorites.path":               "public/favorites/favorites.csv",
	"app.favorites.sqlite-path":        "public/favorites/favorites.db",
	"app.favorites.compaction.cron":    "",
	"app.redis.enabled":                false,
	"app.redis.host":                   "localhost",
	"app.redis.port":                   6379,
	"app.redis.password":               "",
	"app.redis.database":               0,
	"app.redis.lock.key":               "favorites",
	"app.redis.lock.namespace":         "go-weather",
	"app.redis.lock.ttl":               "10s",
}

// init loads application properties from YAML
func init() {
	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if err := Init(value); err != nil {
		log.Printf("Using default properties: %v", err)
	}
}

// Init resets the properties to the defaults and overlays the YAML file at filepath.
// A missing file is reported but leaves the defaults in place.
func Init(filepath string) error {
	properties = viper.New()
	for key, value := range defaults {
		properties.SetDefault(key, value)
	}

	properties.SetConfigFile(filepath)
	properties.SetConfigType("yml")

	if err := properties.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return fmt.Errorf("reading properties: %w", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", properties.AllSettings(), resolved)
	for key, value := range resolved {
		properties.Set(key, value)
	}
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} value from the environment; other values are returned as is
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(strings.TrimSpace(value))
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetUint32(key string) uint32 {
	return properties.GetUint32(key)
}
