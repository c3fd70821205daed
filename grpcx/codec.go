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


package grpcx

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype of the JSON codec.
const CodecName = "json"

// Codec frames gRPC messages as JSON. A *[]byte is passed through
// unchanged in both directions; other values go through encoding/json.
type Codec struct{}

var _ encoding.Codec = Codec{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal implements encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	switch v := v.(type) {
	case *[]byte:
		if v == nil {
			return nil, nil
		}
		return *v, nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("grpcx: marshal: %w", err)
	}
	return b, nil
}

// Unmarshal implements encoding.Codec.
func (Codec) Unmarshal(data []byte, v any) error {
	if p, ok := v.(*[]byte); ok {
		*p = append((*p)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("grpcx: unmarshal: %w", err)
	}
	return nil
}

// Name implements encoding.Codec.
func (Codec) Name() string { return CodecName }
