package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env    string    // development activa la consola legible; lo demás emite JSON
	Level  string    // trace, debug, info, warn, error; desconocido cae en info
	Writer io.Writer // destino de la salida; por defecto os.Stdout
}

// Logger logger estructurado de la aplicación.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger con timestamp en cada evento y redirige el logger
// global de zerolog, de modo que las librerías que escriben por él salgan por
// el mismo destino.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Info, Error y Fatal delegan en zerolog: son los niveles que la aplicación
// emite (arranque, peticiones HTTP y fallos).
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
