package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"glg-capital.backend/pkg/crypto"
)

// sessionKeyBytes is the AES-256 key size the session store expects.
const sessionKeyBytes = 32

var randomToken = crypto.GenerateRandomToken

func validateInputs(jwtBytes int) error {
	if jwtBytes < 16 {
		return fmt.Errorf("invalid jwt-bytes: %d (minimum 16)", jwtBytes)
	}
	return nil
}

// writeSecrets prints fresh secrets in .env format.
func writeSecrets(out io.Writer, jwtBytes int) error {
	sessionKey, err := randomToken(sessionKeyBytes)
	if err != nil {
		return fmt.Errorf("failed to generate session key: %w", err)
	}
	jwtSecret, err := randomToken(jwtBytes)
	if err != nil {
		return fmt.Errorf("failed to generate jwt secret: %w", err)
	}

	_, err = fmt.Fprintf(out, "SESSION_ENCRYPTION_KEY=%s\nJWT_SECRET=%s\n", sessionKey, jwtSecret)
	return err
}

func main() {
	jwtBytes := flag.Int("jwt-bytes", 48, "random bytes in JWT_SECRET")
	flag.Parse()

	if err := validateInputs(*jwtBytes); err != nil {
		log.Fatal(err)
	}
	if err := writeSecrets(os.Stdout, *jwtBytes); err != nil {
		log.Fatal(err)
	}
}
