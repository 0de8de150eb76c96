// Command editorhash prints a bcrypt hash suitable for EDITOR_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/auth"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	fmt.Fprint(os.Stderr, "editor password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatal().Err(err).Msg("read password")
	}

	hash, err := auth.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	fmt.Println(hash)
}
