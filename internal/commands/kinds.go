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


package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall/adapter"
	"dirpx.dev/dcall/apis"
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/mapper"
)

// Kinds prints the kind table, optionally restricted to one group.
func (c *Controller) Kinds(ctx context.Context, group string) error {
	var rows []apis.KindDescriptor
	for _, d := range adapter.Table(c.mapper()) {
		if group == "" || strings.EqualFold(d.Group, group) {
			rows = append(rows, d)
		}
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: unknown group %q", errUsage, group)
	}
	if c.flags().JSON {
		return c.printJSON(rows)
	}

	tw := tabwriter.NewWriter(c.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tGROUP\tHTTP\tGRPC\tSEVERITY\tLOG\tRETRY")
	for _, d := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%t\t%t\n",
			d.Kind, d.Group, d.HTTPStatus, codes.Code(d.GRPCCode), d.Severity, d.ShouldLog, d.Retryable)
	}
	return tw.Flush()
}

// ClassifyInput selects the kind to describe. Exactly one field is set.
type ClassifyInput struct {
	Kind string
	HTTP int
	GRPC string
}

// Classify describes one kind, found by name or by reverse mapping of an
// HTTP status or gRPC code.
func (c *Controller) Classify(ctx context.Context, in ClassifyInput) error {
	k, err := resolveKind(in)
	if err != nil {
		return err
	}
	d := adapter.ToDescriptor(k, c.mapper())
	if c.flags().JSON {
		return c.printJSON(d)
	}

	w := c.out()
	fmt.Fprintf(w, "%s (%s, severity %s)\n", d.Kind, d.Group, d.Severity)
	if !kind.Known(k) {
		fmt.Fprintln(w, "unknown kind, handled as "+kind.InternalError.String())
	}
	fmt.Fprintf(w, "message: %s\n", d.Message)
	fmt.Fprintf(w, "user message: %s\n", d.UserMessage)
	for _, s := range d.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintf(w, "log: %t, retryable: %t\n", d.ShouldLog, d.Retryable)
	fmt.Fprintln(w, c.mapper().Explain(k))
	return nil
}

func resolveKind(in ClassifyInput) (kind.Kind, error) {
	set := 0
	for _, ok := range []bool{in.Kind != "", in.HTTP != 0, in.GRPC != ""} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return kind.Empty, fmt.Errorf("%w: exactly one of --kind, --http or --grpc is required", errUsage)
	}

	switch {
	case in.Kind != "":
		return kind.Parse(in.Kind)
	case in.HTTP != 0:
		return mapper.KindForHTTP(in.HTTP), nil
	default:
		code, err := parseCode(in.GRPC)
		if err != nil {
			return kind.Empty, err
		}
		return mapper.KindForGRPC(code), nil
	}
}

// parseCode accepts "5", "NOT_FOUND" or "not-found".
func parseCode(s string) (codes.Code, error) {
	var c codes.Code
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		s = strconv.FormatUint(n, 10)
	} else {
		s = strconv.Quote(kind.Normalize(s))
	}
	if err := c.UnmarshalJSON([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %v", errUsage, err)
	}
	return c, nil
}

func (c *Controller) printJSON(v any) error {
	enc := json.NewEncoder(c.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
