package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of the env var, or def when it is not set or empty
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value, ok := os.LookupEnv(env)
	if !ok || value == "" {
		log.Debugw("config", "env", env, "status", "not set, using default")
		return def
	}
	return value
}

// Must return the value of the env var, if the env var is empty it panics, since the app can't start without it
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Errorw("config", "env", env, "status", "required env var not set")
		panic("missing required env var " + env)
	}
	return value
}
