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


package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/dispatch"
	"dirpx.dev/dcall/internal/commands"
	"dirpx.dev/dcall/sdk"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags:   &commands.Flags{},
		Catalog: sdk.Catalog(),
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "dcall",
		Usage:   "Inspect error kinds and call catalog operations over REST or RPC",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("DCALL_LOG_LEVEL"),
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write JSON logs to this file, rotated at 10 MB, instead of the console",
				Sources: cli.EnvVars("DCALL_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a JSON client configuration file",
				Sources: cli.EnvVars("DCALL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "prefix of every REST address",
				Sources: cli.EnvVars(dispatch.EnvBaseURL),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-call timeout, overrides " + dispatch.EnvTimeout,
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "bearer token sent with every call",
				Sources: cli.EnvVars("DCALL_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "grpc-target",
				Usage:   "address of the RPC server (host:port)",
				Sources: cli.EnvVars("DCALL_GRPC_TARGET"),
			},
			&cli.StringFlag{
				Name:  "grpc-package",
				Usage: "protobuf package prefix of the RPC services",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print JSON instead of text",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			if path := c.String("log-file"); path != "" {
				log.Logger = log.Output(&lumberjack.Logger{
					Filename:   path,
					MaxSize:    10, // megabytes
					MaxBackups: 3,
					MaxAge:     28, // days
					Compress:   true,
				})
			}
			log.Logger = log.Level(level)
			ctrl.Log = log.Logger

			*ctrl.Flags = commands.Flags{
				LogLevel:    c.String("log-level"),
				ConfigPath:  c.String("config"),
				BaseURL:     c.String("base-url"),
				GRPCTarget:  c.String("grpc-target"),
				GRPCPackage: c.String("grpc-package"),
				Token:       c.String("token"),
				Timeout:     c.Duration("timeout"),
				JSON:        c.Bool("json"),
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "kinds",
				Usage: "List error kinds with their transport mappings",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "group", Usage: "only list kinds of this group"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Kinds(ctx, c.String("group"))
				},
			},
			{
				Name:  "classify",
				Usage: "Describe a kind, or the kind an HTTP status or gRPC code maps back to",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Usage: "kind name, e.g. RATE_LIMITED"},
					&cli.IntFlag{Name: "http", Usage: "HTTP status"},
					&cli.StringFlag{Name: "grpc", Usage: "gRPC code name or number"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Classify(ctx, commands.ClassifyInput{
						Kind: c.String("kind"),
						HTTP: int(c.Int("http")),
						GRPC: c.String("grpc"),
					})
				},
			},
			{
				Name:      "resolve",
				Usage:     "Expand an address template",
				ArgsUsage: "TEMPLATE [key=value...]",
				Action: func(ctx context.Context, c *cli.Command) error {
					args := c.Args().Slice()
					if len(args) == 0 {
						return ctrl.Resolve(ctx, "", nil)
					}
					return ctrl.Resolve(ctx, args[0], args[1:])
				},
			},
			{
				Name:  "routes",
				Usage: "List the operations of the catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Routes(ctx)
				},
			},
			{
				Name:      "call",
				Usage:     "Call a catalog operation",
				ArgsUsage: "GROUP.ACTION",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Usage: "JSON body, or @file"},
					&cli.StringSliceFlag{Name: "param", Aliases: []string{"p"}, Usage: "address parameter key=value"},
					&cli.StringSliceFlag{Name: "header", Aliases: []string{"H"}, Usage: "request header \"Name: value\""},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Call(ctx, commands.CallInput{
						Operation: c.Args().First(),
						Data:      c.String("data"),
						Params:    c.StringSlice("param"),
						Headers:   c.StringSlice("header"),
					})
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		if e, ok := dcall.As(err); ok {
			log.Error().Object("error", e).Msg("call failed")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("failed to run dcall")
	}
}
