package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dom/prodle/internal/api/handlers"
	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name      string
		query     url.Values
		wantFirst string
		wantLen   int
	}{
		{name: "prefix", query: url.Values{"q": {"ca"}}, wantFirst: "Caps", wantLen: 3},
		{name: "empty query", query: url.Values{"q": {""}}, wantLen: 0},
		{name: "no query", query: url.Values{}, wantLen: 0},
		{name: "lower limit", query: url.Values{"q": {"jan"}, "limit": {"1"}}, wantFirst: "Jankos", wantLen: 1},
		{name: "limit cannot exceed default", query: url.Values{"q": {"e"}, "limit": {"50"}}, wantLen: 3},
		{name: "zero limit", query: url.Values{"q": {"rek"}, "limit": {"0"}}, wantLen: 0},
		{name: "unmatched query is not an error", query: url.Values{"q": {"zzzzzzzzzzzzzzzzzzzz"}}, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.APIURL("/suggestions?" + tt.query.Encode()))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var result []domain.Suggestion
			testutil.AssertJSONResponse(t, resp, &result)
			assert.NotNil(t, result, "always a JSON array")
			assert.Len(t, result, tt.wantLen)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, result[0].Username)
			}
		})
	}
}

func TestSuggestionHandler_InvalidLimit(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name      string
		limit     string
		wantField string
	}{
		{name: "not a number", limit: "many", wantField: "must be a whole number"},
		{name: "negative", limit: "-1", wantField: "must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{"q": {"rek"}, "limit": {tt.limit}}
			resp, err := http.Get(ts.APIURL("/suggestions?" + query.Encode()))
			require.NoError(t, err)
			defer resp.Body.Close()

			testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

			var body handlers.ErrorResponse
			testutil.AssertJSONResponse(t, resp, &body)
			assert.Equal(t, tt.wantField, body.Fields["limit"])
		})
	}
}
