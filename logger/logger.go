package logger

import (
	"sync"

	"github.com/gruntwork-io/go-commons/logging"
	"github.com/sirupsen/logrus"
)

var (
	once       sync.Once
	projectLog *logrus.Logger
)

// GetProjectLogger returns the shared logger for the whole rig. Every package logs
// through this so the output interleaves sensibly with the render loop's cadence.
func GetProjectLogger() *logrus.Logger {
	once.Do(func() {
		projectLog = logging.GetLogger("helios")
	})
	return projectLog
}

// SetLevel adjusts the verbosity of the project logger.
func SetLevel(level logrus.Level) {
	GetProjectLogger().SetLevel(level)
}
