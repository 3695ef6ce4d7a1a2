package shared

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name string `json:"name"`
}

// hookedRequest exercises the Validate hook path of ValidateRequest:
// the tag accepts any non-empty string, the hook rejects whitespace.
type hookedRequest struct {
	Name string `validate:"required"`
}

var errBlankName = errors.New("name cannot be blank")

func (h hookedRequest) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errBlankName
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantOK  bool
	}{
		{name: "valid payload", body: `{"name":"fine"}`, wantOK: true},
		{name: "trailing whitespace tolerated", body: `{"name":"fine"}` + "\n  ", wantOK: true},
		{name: "malformed JSON", body: `{name`, wantOK: false},
		{name: "trailing garbage", body: `{"name":"fine"} extra`, wantErr: ErrTrailingData},
		{name: "second JSON value", body: `{"name":"a"}{"name":"b"}`, wantErr: ErrTrailingData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(tc.body))

			var target decodeTarget
			err := DecodeJSON(req, &target)

			if tc.wantOK {
				require.NoError(t, err)
				assert.Equal(t, "fine", target.Name)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestDecodeJSONBodySizeCap(t *testing.T) {
	// A payload past the cap is truncated mid-value and fails to decode.
	huge := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(huge))

	var target decodeTarget
	assert.Error(t, DecodeJSON(req, &target))
}

func TestValidateRequest(t *testing.T) {
	t.Run("tag rules run first", func(t *testing.T) {
		err := ValidateRequest(hookedRequest{})
		require.Error(t, err)
		assert.NotErrorIs(t, err, errBlankName)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("hook catches what tags cannot", func(t *testing.T) {
		err := ValidateRequest(hookedRequest{Name: "   "})
		assert.ErrorIs(t, err, errBlankName)
	})

	t.Run("valid request passes both", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(hookedRequest{Name: "ok"}))
	})

	t.Run("struct without hook uses tags only", func(t *testing.T) {
		type plain struct {
			Name string `validate:"required"`
		}
		assert.NoError(t, ValidateRequest(plain{Name: " "}))
		assert.Error(t, ValidateRequest(plain{}))
	})
}
