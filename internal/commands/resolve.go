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
	"fmt"

	"dirpx.dev/dcall/address"
)

// Resolve prints the address template expands to with the given key=value
// parameters, against the --base-url flag.
func (c *Controller) Resolve(ctx context.Context, template string, pairs []string) error {
	if template == "" {
		return fmt.Errorf("%w: a path template is required", errUsage)
	}
	params, err := parsePairs(pairs)
	if err != nil {
		return err
	}
	out, err := address.Resolve(c.flags().BaseURL, template, params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out(), out)
	return err
}

// Routes prints the operations of the catalog.
func (c *Controller) Routes(ctx context.Context) error {
	ops := c.Catalog.Operations()
	if c.flags().JSON {
		return c.printJSON(ops)
	}
	for _, op := range ops {
		if _, err := fmt.Fprintln(c.out(), op); err != nil {
			return err
		}
	}
	return nil
}
