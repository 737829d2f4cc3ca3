package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration written as "10s" or "750ms" in TOML files and
// on the command line. An empty value is zero; negative values are rejected.
type Duration struct {
	time.Duration
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("config: duration %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("config: duration %q is negative", s)
	}
	return v, nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := parseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Set makes *Duration a flag.Value.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}
