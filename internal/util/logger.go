package util

import "go.uber.org/zap"

// NewLogger returns a sugared zap logger. Pass the environment name to get
// production encoding; calling it without arguments (unit tests) yields a
// development logger.
func NewLogger(env ...string) *zap.SugaredLogger {
	if len(env) > 0 && env[0] == "production" {
		return zap.Must(zap.NewProduction()).Sugar()
	}

	return zap.Must(zap.NewDevelopment()).Sugar()
}
