// response.go
//
// A catalog data service for industrial plastic materials
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of materialsdb.
// materialsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// materialsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with materialsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Ok      bool              `json:"ok"`
	Type    string            `json:"type"`
	Errors  map[string]string `json:"errors"`
}

// Get issues a GET to baseURL+path with an optional session cookie
func Get(t *testing.T, baseURL, path, session string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "cookie_session", Value: session})
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// AssertStatus verifies the HTTP status code, showing the body on mismatch
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		body, _ := io.ReadAll(resp.Body)
		assert.Failf(t, "unexpected status", "expected %d, got %d. Body: %s", expected, resp.StatusCode, body)
	}
}

// ParseJSON decodes the response body into target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoErrorf(t, json.Unmarshal(body, target), "body: %s", body)
}

// AssertError verifies the status line and the status echoed in the body
func AssertError(t *testing.T, resp *http.Response, expected int) ErrorBody {
	t.Helper()
	AssertStatus(t, resp, expected)

	var body ErrorBody
	ParseJSON(t, resp, &body)
	assert.False(t, body.Ok)
	assert.Equal(t, expected, body.Status)
	return body
}
