package logger

import (
	"github.com/SeaCloudHub/storefront/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewAppLogger builds a JSON production logger, or a console development
// logger for the local environment.
func NewAppLogger(appCfg *config.Config) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if appCfg.IsLocal() {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

func Sync(logger *zap.SugaredLogger) {
	_ = logger.Sync()
}
