package env

import (
	"go.uber.org/zap"
	"strconv"
)

// IntDefault return the result of searching an env var as int, if the env var is empty or invalid, the default is used
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	orDefault := OrDefault(log, env, def)
	value, err := strconv.Atoi(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as int for ", env, ": ", err)
		value, _ = strconv.Atoi(def)
	}
	return value
}
