// Package logger initializes the process-wide zap logger.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// Init builds a zap logger. Set SPONSVISA_LOG_MODE=development for
// human-readable console output.
func Init() (*zap.Logger, error) {
	mode := strings.ToLower(os.Getenv("SPONSVISA_LOG_MODE"))
	if mode == "development" || mode == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
