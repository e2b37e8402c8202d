package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/rules"
)

// Configuration variables. Each one can be overridden from the environment
// and again by the matching command line flag.
var (
	DataDir         = getEnvString("SNAKE_DATA_DIR", highscore.DefaultDir())
	LogFile         = getEnvString("SNAKE_LOG_FILE", "")
	LogLevel        = getEnvString("SNAKE_LOG_LEVEL", "info")
	MetricsAddr     = getEnvString("SNAKE_METRICS_ADDR", "")
	MinTickInterval = time.Duration(getEnvInt("SNAKE_MIN_TICK_MS", int(rules.DefaultMinTickInterval/time.Millisecond))) * time.Millisecond
)

// LogPath returns where logs go: LogFile if set, otherwise snake.log in dataDir.
func LogPath(dataDir, logFile string) string {
	if logFile != "" {
		return logFile
	}
	return filepath.Join(dataDir, "snake.log")
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil || intVal <= 0 {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
