package env

import (
	"go.uber.org/zap"
	"strconv"
)

// BoolDefault return the result of searching an env var as bool, if the env var is empty or invalid, the default is used
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	value, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool for ", env, ": ", err)
		value, _ = strconv.ParseBool(def)
	}
	return value
}
