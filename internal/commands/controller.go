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


// Package commands contains the dcall CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dirpx.dev/dcall/address"
	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/catalog"
	"dirpx.dev/dcall/dispatch"
	"dirpx.dev/dcall/mapper"
)

// Flags are the global flags shared by every command.
type Flags struct {
	LogLevel    string
	ConfigPath  string
	BaseURL     string
	GRPCTarget  string
	GRPCPackage string
	Token       string
	Timeout     time.Duration
	JSON        bool
}

// Controller runs the commands. Zero-valued fields fall back to defaults:
// os.Stdout, the default mapper and transports built from Flags.
type Controller struct {
	Flags   *Flags
	Out     io.Writer
	Log     zerolog.Logger
	Mapper  apis.Mapper
	Catalog *catalog.Catalog

	// Sender and Caller replace the transports built from Flags.
	Sender dispatch.Sender
	Caller dispatch.Caller
}

var errUsage = errors.New("invalid usage")

func (c *Controller) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Controller) mapper() apis.Mapper {
	if c.Mapper == nil {
		return mapper.Default()
	}
	return c.Mapper
}

func (c *Controller) flags() *Flags {
	if c.Flags == nil {
		return &Flags{}
	}
	return c.Flags
}

// parsePairs turns "key=value" arguments into parameters. A repeated key
// becomes a list.
func parsePairs(pairs []string) (address.Params, error) {
	var p address.Params
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return p, fmt.Errorf("%w: parameter %q is not key=value", errUsage, kv)
		}
		prev, _ := p.Get(k)
		switch prev := prev.(type) {
		case nil:
			p.Set(k, v)
		case string:
			p.Set(k, []string{prev, v})
		case []string:
			p.Set(k, append(prev, v))
		}
	}
	return p, nil
}
