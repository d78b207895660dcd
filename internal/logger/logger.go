package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/oktoberfest-api/internal/config"
)

// Init replaces zap's global logger; everything logs through zap.L().
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	if environment == config.EnvProduction {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
