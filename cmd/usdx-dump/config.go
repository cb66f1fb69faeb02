package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/encoding"

	"github.com/simonhull/usdx"
	"github.com/simonhull/usdx/internal/charset"
)

// config is read from the environment, optionally seeded from a .env file
// in the working directory.
type config struct {
	Fallback encoding.Encoding // USDX_FALLBACK_ENCODING, e.g. CP1252
	LogLevel slog.Level        // USDX_LOG_LEVEL: debug, info, warn, error
	Lenient  bool              // USDX_LENIENT
	Logging  bool              // set when USDX_LOG_LEVEL is present
}

func loadConfig() (*config, error) {
	_ = godotenv.Load()

	cfg := &config{}

	if v := strings.TrimSpace(os.Getenv("USDX_LENIENT")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("USDX_LENIENT: %w", err)
		}
		cfg.Lenient = b
	}

	if v := strings.TrimSpace(os.Getenv("USDX_FALLBACK_ENCODING")); v != "" {
		enc, ok := charset.Lookup(v)
		if !ok {
			return nil, fmt.Errorf("USDX_FALLBACK_ENCODING: unknown encoding %q", v)
		}
		cfg.Fallback = enc
	}

	if v := strings.TrimSpace(os.Getenv("USDX_LOG_LEVEL")); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("USDX_LOG_LEVEL: %w", err)
		}
		cfg.Logging = true
	}

	return cfg, nil
}

// options turns the configuration into parse options.
func (c *config) options() []usdx.Option {
	var opts []usdx.Option
	if c.Lenient {
		opts = append(opts, usdx.WithLenientParsing())
	}
	if c.Fallback != nil {
		opts = append(opts, usdx.WithFallbackEncoding(c.Fallback))
	}
	if c.Logging {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel})
		opts = append(opts, usdx.WithLogger(slog.New(handler)))
	}
	return opts
}
