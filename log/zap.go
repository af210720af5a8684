package log

import (
	"go.uber.org/zap"
)

// Logger is shared by every package in the module. It stays silent until the
// binary picks a production or development logger.
var Logger = zap.NewNop()

func InitProductionLogger() {
	Logger, _ = zap.NewProduction()
}

func InitDevelopmentLogger() {
	Logger, _ = zap.NewDevelopment()
}
