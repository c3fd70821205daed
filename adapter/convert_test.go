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


package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/dcall"
	"dirpx.dev/dcall/kind"
	"dirpx.dev/dcall/mapper"
)

func TestToDescriptor(t *testing.T) {
	d := ToDescriptor(kind.RateLimited, nil)
	assert.Equal(t, "RATE_LIMITED", d.Kind)
	assert.Equal(t, string(kind.RateLimiting), d.Group)
	assert.Equal(t, http.StatusTooManyRequests, d.HTTPStatus)
	assert.Equal(t, int(codes.ResourceExhausted), d.GRPCCode)
	assert.True(t, d.Retryable)
	assert.Equal(t, mapper.Describe(kind.RateLimited), d)

	m := mapper.MustNew(
		mapper.WithHTTPOverride(kind.RateLimited, http.StatusServiceUnavailable),
		mapper.WithUserMessage(kind.RateLimited, "Slow down."),
	)
	d = ToDescriptor(kind.RateLimited, m)
	assert.Equal(t, http.StatusServiceUnavailable, d.HTTPStatus)
	assert.Equal(t, "Slow down.", d.UserMessage)

	unknown := ToDescriptor("FROM_THE_FUTURE", nil)
	assert.Equal(t, "FROM_THE_FUTURE", unknown.Kind)
	assert.Equal(t, http.StatusInternalServerError, unknown.HTTPStatus)
}

func TestTable(t *testing.T) {
	tbl := Table(nil)
	require.Len(t, tbl, len(kind.All()))

	seen := make(map[string]bool, len(tbl))
	for _, d := range tbl {
		assert.False(t, seen[d.Kind], d.Kind)
		seen[d.Kind] = true
		assert.NotEmpty(t, d.Message, d.Kind)
	}
	assert.Equal(t, string(kind.Groups()[0]), tbl[0].Group)
}

func TestToView(t *testing.T) {
	assert.Equal(t, "", ToView(nil, nil).Kind)

	e := dcall.New(kind.ResourceNotFound, dcall.Context{RequestID: "req-9"},
		dcall.WithResource("invoice", "inv_1"))
	v := ToView(e, nil)
	assert.Equal(t, e.ErrorView(), v)

	m := mapper.MustNew(mapper.WithHTTPOverride(kind.ResourceNotFound, http.StatusGone))
	v = ToView(e, m)
	assert.Equal(t, http.StatusGone, v.Status)
	assert.Equal(t, "req-9", v.RequestID)
	assert.Equal(t, "RESOURCE_NOT_FOUND", v.Kind)
}
