package env

import (
	"go.uber.org/zap"
	"time"
)

// DurationDefault return the result of searching an env var as time.Duration, if the env var is empty or invalid, the default is used
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	duration, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration for ", env, ": ", err)
		duration, _ = time.ParseDuration(def)
	}
	return duration
}
