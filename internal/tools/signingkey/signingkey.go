// Package signingkey generates HS256 signing keys for session tokens.
package signingkey

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
)

// EnvName is the variable the web command reads its signing key from.
const EnvName = "PORTFOLIO_SPACE_SESSION_SIGNING_KEY"

// minBytes matches the HS256 block size.
const minBytes = 32

// Config controls key generation.
type Config struct {
	Bytes int
	// Raw prints only the encoded key, without the env assignment.
	Raw bool
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: minBytes}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes, at least 32")
	fs.BoolVar(&cfg.Raw, "raw", false, "print only the key")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads cfg.Bytes of randomness from reader and writes the base64url
// encoded key to out. A nil reader uses crypto/rand.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if cfg.Bytes < minBytes {
		return fmt.Errorf("bytes must be at least %d", minBytes)
	}
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, cfg.Bytes)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return fmt.Errorf("generate random bytes: %w", err)
	}
	key := base64.RawURLEncoding.EncodeToString(buf)
	if cfg.Raw {
		_, err := fmt.Fprintln(out, key)
		return err
	}
	_, err := fmt.Fprintf(out, "%s=%s\n", EnvName, key)
	return err
}
