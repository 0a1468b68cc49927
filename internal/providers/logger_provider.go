package providers

import (
	"io"
	"os"
	"time"
	"wellsync/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum string

const (
	TypeApp    TypeEnum = "app"
	TypeSource TypeEnum = "source"
	TypeSink   TypeEnum = "sink"
	TypeSync   TypeEnum = "sync"
)

type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	log  zerolog.Logger
	file *os.File
}

// NewLogProvider builds the zerolog-backed logger: console output on stderr,
// plus an append-only log file when one is configured. The debug CLI flag
// overrides the configured level.
func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}

	var file *os.File
	if conf.Logger.File != "" {
		file, err = os.OpenFile(conf.Logger.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()

	return &LogProvider{log: log, file: file}, nil
}

func (p *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	p.log.Debug().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	p.log.Info().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	p.log.Warn().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	p.log.Error().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Close() {
	if p.file != nil {
		_ = p.file.Close()
	}
}
