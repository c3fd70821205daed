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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/adapter"
	"dirpx.dev/dcall/catalog"
	"dirpx.dev/dcall/dispatch"
	"dirpx.dev/dcall/grpcx"
	"dirpx.dev/dcall/httpx"
)

// CallInput describes one call made from the command line.
type CallInput struct {
	// Operation is "group.action" as listed by Routes.
	Operation string
	// Data is the JSON request body, or "@file" to read it from a file.
	Data string
	// Params are key=value address parameters.
	Params []string
	// Headers are "Name: value" request headers.
	Headers []string
}

// Call performs one catalog operation with an untyped JSON payload and
// prints the response data. A failed call prints the error view and
// returns the error.
func (c *Controller) Call(ctx context.Context, in CallInput) error {
	op, ok := c.find(in.Operation)
	if !ok {
		return fmt.Errorf("%w: unknown operation %q, see the routes command", errUsage, in.Operation)
	}
	body, err := readData(in.Data)
	if err != nil {
		return err
	}
	opts, err := callOptions(in, c.flags())
	if err != nil {
		return err
	}

	client, closeFn, err := c.client()
	if err != nil {
		return err
	}
	defer closeFn()

	var ep catalog.Endpoint[json.RawMessage, json.RawMessage]
	if op.Transport == catalog.TransportRPC {
		ep = catalog.RPC[json.RawMessage, json.RawMessage](op.Group, op.Action)
	} else {
		ep = catalog.REST[json.RawMessage, json.RawMessage](op.Group, op.Action, op.Method, op.Path)
	}

	res, err := dispatch.Call(ctx, client, ep, body, opts...)
	if err != nil {
		if e, ok := dcall.As(err); ok {
			if perr := c.printJSON(adapter.ToView(e, c.mapper())); perr != nil {
				return perr
			}
		}
		return err
	}
	if len(res) == 0 {
		res = json.RawMessage("null")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, res, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(c.out())
	return err
}

func (c *Controller) find(name string) (catalog.Operation, bool) {
	for _, op := range c.Catalog.Operations() {
		if op.Name() == name {
			return op, true
		}
	}
	return catalog.Operation{}, false
}

// client builds a dispatch client from the config file, the flags and the
// injected transports. The returned func releases the transports.
func (c *Controller) client() (*dispatch.Client, func(), error) {
	f := c.flags()
	cfg, err := dispatch.LoadConfig(f.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.Timeout > 0 {
		cfg.Timeout = dispatch.Duration(f.Timeout)
	}

	closeFn := func() {}
	sender, caller := c.Sender, c.Caller
	if sender == nil {
		sender = httpx.NewSender(nil)
	}
	if caller == nil && f.GRPCTarget != "" {
		conn, err := grpc.NewClient(f.GRPCTarget, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to dial %s: %w", f.GRPCTarget, err)
		}
		caller = grpcx.NewCaller(conn, f.GRPCPackage)
		closeFn = func() { _ = conn.Close() }
	}

	client, err := dispatch.New(
		dispatch.WithCatalog(c.Catalog),
		dispatch.WithConfig(cfg),
		dispatch.WithLogger(c.Log),
		dispatch.WithSender(sender),
		dispatch.WithCaller(caller),
	)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return client, closeFn, nil
}

func readData(data string) (json.RawMessage, error) {
	if data == "" {
		return nil, nil
	}
	b := []byte(data)
	if name, ok := strings.CutPrefix(data, "@"); ok {
		var err error
		if b, err = os.ReadFile(name); err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%w: request body is not valid JSON", errUsage)
	}
	return json.RawMessage(b), nil
}

func callOptions(in CallInput, f *Flags) ([]dispatch.CallOption, error) {
	params, err := parsePairs(in.Params)
	if err != nil {
		return nil, err
	}
	opts := []dispatch.CallOption{dispatch.WithParams(params)}
	for _, h := range in.Headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: header %q is not \"Name: value\"", errUsage, h)
		}
		opts = append(opts, dispatch.WithHeader(strings.TrimSpace(name), strings.TrimSpace(value)))
	}
	if f.Token != "" {
		opts = append(opts, dispatch.WithBearerToken(f.Token))
	}
	return opts, nil
}
