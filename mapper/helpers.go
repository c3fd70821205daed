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


package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall/kind"
)

// freeze makes an immutable copy of a builder map, converting values with
// conv. Used when finalizing the mapper so later mutations to the builder
// cannot affect the mapper.
func freeze[V, W any](src map[kind.Kind]V, conv func(V) W) map[kind.Kind]W {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[kind.Kind]W, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func same[V any](v V) V { return v }

func toCode(v int) codes.Code { return codes.Code(v) }

// validateHTTP checks the kinds and statuses of an HTTP rule set.
func validateHTTP(tier string, rules map[kind.Kind]int) error {
	for k, v := range rules {
		if err := kind.Validate(k); err != nil {
			return fmt.Errorf("mapper: HTTP %s for kind %q: %w", tier, k, err)
		}
		if v < 100 || v > 599 {
			return fmt.Errorf("mapper: HTTP %s for kind %q: status %d out of range", tier, k, v)
		}
	}
	return nil
}

// validateGRPC checks the kinds and codes of a gRPC rule set.
func validateGRPC(tier string, rules map[kind.Kind]int) error {
	for k, v := range rules {
		if err := kind.Validate(k); err != nil {
			return fmt.Errorf("mapper: gRPC %s for kind %q: %w", tier, k, err)
		}
		if v < int(codes.OK) || v > int(codes.Unauthenticated) {
			return fmt.Errorf("mapper: gRPC %s for kind %q: code %d out of range", tier, k, v)
		}
	}
	return nil
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
