package logger

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog instance. In gin's debug mode the
// output is a human-readable console writer, otherwise structured JSON.
func Init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if gin.Mode() == gin.ReleaseMode {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
