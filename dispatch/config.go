/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


package dispatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by LoadConfig and Config.ApplyEnv.
const (
	EnvBaseURL = "DCALL_BASE_URL"
	EnvTimeout = "DCALL_TIMEOUT"
)

// DefaultUserAgent is sent when the configuration names none.
const DefaultUserAgent = "dcall-api-client"

// Config is the file-backed part of a client's configuration:
//
//	{
//	  "baseUrl": "https://api.example.com",
//	  "timeout": "5s",
//	  "headers": {"X-Client": "cli"}
//	}
type Config struct {
	BaseURL   string            `json:"baseUrl"`
	Timeout   Duration          `json:"timeout"`
	UserAgent string            `json:"userAgent"`
	Headers   map[string]string `json:"headers"`
}

// Duration is a time.Duration that decodes from "5s"-style strings or from
// a number of seconds.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := parseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}
	*d = Duration(secs * float64(time.Second))
	return nil
}

// parseDuration accepts time.ParseDuration syntax or a plain number of
// seconds.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration %q: negative", s)
	}
	return d, nil
}

// LoadConfig reads a JSON configuration file and applies the environment
// overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from DCALL_BASE_URL and DCALL_TIMEOUT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = Duration(d)
	}
	return nil
}
