// Package passwordhash prints bootstrap user entries with bcrypt hashes.
package passwordhash

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/louisbranch/portfolio.space/internal/services/auth/credential"
)

// Config holds the account fields for the generated entry.
type Config struct {
	ID    string
	Name  string
	Email string
	Cost  int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Cost: bcrypt.DefaultCost}
	fs.StringVar(&cfg.ID, "id", "", "user id")
	fs.StringVar(&cfg.Name, "name", "", "display name")
	fs.StringVar(&cfg.Email, "email", "", "login email")
	fs.IntVar(&cfg.Cost, "cost", cfg.Cost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads the password from the first line of in and writes one JSON
// user object to out.
func Run(cfg Config, in io.Reader, out io.Writer) error {
	if strings.TrimSpace(cfg.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(cfg.Email) == "" {
		return errors.New("email is required")
	}
	if cfg.Cost < bcrypt.MinCost || cfg.Cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if in == nil || out == nil {
		return errors.New("input and output are required")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	hash, err := credential.HashPassword(password, cfg.Cost)
	if err != nil {
		return err
	}
	return json.NewEncoder(out).Encode(credential.User{
		ID:           strings.TrimSpace(cfg.ID),
		Name:         strings.TrimSpace(cfg.Name),
		Email:        strings.ToLower(strings.TrimSpace(cfg.Email)),
		PasswordHash: hash,
	})
}
