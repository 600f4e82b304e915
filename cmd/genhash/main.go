package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"glg-capital.backend/pkg/crypto"
)

var hashPassword = crypto.HashPassword

var errUsage = errors.New("usage: genhash <password>")

// run prints the bcrypt hash of the single password argument, suitable for
// seeding users.password_hash out of band.
func run(args []string, out io.Writer) error {
	if len(args) != 1 || args[0] == "" {
		return errUsage
	}

	hash, err := hashPassword(args[0])
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
