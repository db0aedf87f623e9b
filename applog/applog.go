// Package applog builds the file-backed zerolog.Logger used by the demo
// command and by any host application that wants the same behaviour.
//
// A process that owns /dev/tty in raw mode (see ttykbd.Termios.ApplyRaw) cannot log to
// stdout without corrupting its own input stream, so logs go to a file in
// os.TempDir() instead - the same constraint the teacher's log.InitLogger
// was built around.
package applog

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/rs/zerolog"
)

const defaultFileMode os.FileMode = 0600

// NewFileLogger opens (creating if necessary) a per-user log file under
// os.TempDir() named "fbinput-<component>-<user>.log" and returns a
// zerolog.Logger writing to it plus a closer the caller must invoke during
// shutdown.
func NewFileLogger(component string) (zerolog.Logger, func() error, error) {
	usr, err := user.Current()
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("applog: resolving current user: %w", err)
	}

	fileName := filepath.Join(os.TempDir(), fmt.Sprintf("fbinput-%s-%s.log", component, usr.Username))
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("applog: opening log file %s: %w", fileName, err)
	}

	zerolog.TimestampFieldName = "t"
	zerolog.LevelFieldName = "l"
	zerolog.MessageFieldName = "m"

	logger := zerolog.New(zerolog.ConsoleWriter{Out: file, NoColor: true}).
		With().
		Timestamp().
		Str("component", component).
		Logger()

	logger.Info().Str("file", fileName).Msg("logger initialized")

	return logger, file.Close, nil
}
