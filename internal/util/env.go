package util

import (
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of the given env variable or the provided default
// if it is unset or empty.
func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}

	return defaultVal
}

// GetEnvAsInt returns the env variable parsed as int or the default.
func GetEnvAsInt(key string, defaultVal int) int {
	strVal, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}

	val, err := strconv.Atoi(strVal)
	if err != nil {
		return defaultVal
	}

	return val
}

// GetEnvAsBool returns the env variable parsed as bool or the default.
func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}

	val, err := strconv.ParseBool(strVal)
	if err != nil {
		return defaultVal
	}

	return val
}

// GetEnvAsStringArr returns the env variable split by the given separator
// (default ",") or the default. Empty entries are dropped.
func GetEnvAsStringArr(key string, defaultVal []string, separator ...string) []string {
	strVal, ok := os.LookupEnv(key)
	if !ok || strVal == "" {
		return defaultVal
	}

	sep := ","
	if len(separator) > 0 {
		sep = separator[0]
	}

	parts := strings.Split(strVal, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
