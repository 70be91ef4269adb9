package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup cria o logger do processo: console legível no stderr mais um arquivo
// de log em modo append, os dois recebendo todos os eventos.
func Setup(logFile string) (zerolog.Logger, error) {
	console := zerolog.ConsoleWriter{Out: os.Stderr}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, err
	}

	l := zerolog.New(zerolog.MultiLevelWriter(console, f)).
		With().Timestamp().Logger()

	// Redireciona o logger global do zerolog para bibliotecas que o usem
	log.Logger = l
	return l, nil
}
