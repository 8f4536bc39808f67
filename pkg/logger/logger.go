// pkg/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — глобальный логгер. До вызова Init пишет в io.Discard,
// поэтому пакеты и тесты могут логировать без инициализации.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init настраивает глобальный логгер по LOG_LEVEL и LOG_FORMAT.
// Вызывается один раз из main.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput — то же, что Init, но с произвольным приёмником.
// Терминальный фронтенд пишет логи в файл, чтобы не портить экран.
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
