// Package postgres coordinates hashid codec configuration through a
// PostgreSQL database. Every service instance that encodes or decodes
// the same identifiers must resolve the same salt, alphabet,
// separators, and minimum length; storing the configuration in the
// database and validating it at startup catches drift before it
// produces hashids nobody can decode.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paraglidehq/hashid"
)

// Config holds the codec parameters shared by every service instance.
type Config struct {
	Salt       string
	Alphabet   string
	Separators string
	MinLength  int
}

// DefaultConfig returns a configuration with the default alphabet and
// separators, no salt, and no minimum length.
func DefaultConfig() Config {
	return Config{
		Alphabet:   hashid.DefaultAlphabet,
		Separators: hashid.DefaultSeparators,
	}
}

// Codec builds the codec described by the configuration.
func (c Config) Codec() (*hashid.Codec, error) {
	return hashid.New(
		hashid.WithSalt(c.Salt),
		hashid.WithAlphabet(c.Alphabet),
		hashid.WithSeparators(c.Separators),
		hashid.WithMinLength(c.MinLength),
	)
}

var ErrConfigMismatch = errors.New("hashid: database config does not match application config")

// Migrate creates the config table if needed and validates that the
// stored configuration matches cfg. If the database already holds a
// different configuration, returns ErrConfigMismatch. Idempotent.
func Migrate(ctx context.Context, db *sql.DB, cfg Config) error {
	// Reject configurations the codec itself would reject.
	if _, err := cfg.Codec(); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _hashid_config (
			id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			salt text NOT NULL,
			alphabet text NOT NULL,
			separators text NOT NULL,
			min_length int NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("hashid: create config table: %w", err)
	}

	var stored Config
	err = db.QueryRowContext(ctx, `SELECT salt, alphabet, separators, min_length FROM _hashid_config`).
		Scan(&stored.Salt, &stored.Alphabet, &stored.Separators, &stored.MinLength)
	if err == nil {
		// Config exists, validate it matches
		if stored != cfg {
			return fmt.Errorf("%w: db has salt=%q alphabet=%q separators=%q min_length=%d, app has salt=%q alphabet=%q separators=%q min_length=%d",
				ErrConfigMismatch,
				stored.Salt, stored.Alphabet, stored.Separators, stored.MinLength,
				cfg.Salt, cfg.Alphabet, cfg.Separators, cfg.MinLength)
		}
	} else if errors.Is(err, sql.ErrNoRows) {
		// Insert config
		_, err = db.ExecContext(ctx, `INSERT INTO _hashid_config (salt, alphabet, separators, min_length) VALUES ($1, $2, $3, $4)`,
			cfg.Salt, cfg.Alphabet, cfg.Separators, cfg.MinLength)
		if err != nil {
			return fmt.Errorf("hashid: insert config: %w", err)
		}
	} else {
		return fmt.Errorf("hashid: read config: %w", err)
	}

	return nil
}

// GetConfig reads the hashid configuration from the database.
func GetConfig(ctx context.Context, db *sql.DB) (Config, error) {
	var cfg Config
	err := db.QueryRowContext(ctx, `SELECT salt, alphabet, separators, min_length FROM _hashid_config`).
		Scan(&cfg.Salt, &cfg.Alphabet, &cfg.Separators, &cfg.MinLength)
	return cfg, err
}

// Codec runs Migrate and returns the codec for cfg. Convenience for
// app startup: one call validates the shared configuration and hands
// back a ready-to-use codec.
func Codec(ctx context.Context, db *sql.DB, cfg Config) (*hashid.Codec, error) {
	if err := Migrate(ctx, db, cfg); err != nil {
		return nil, err
	}
	return cfg.Codec()
}
