package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONHandler(t *testing.T) {
	// Define a simple test function
	type TestReq struct {
		Input string `json:"input"`
	}
	type TestResp struct {
		Output string `json:"output"`
	}

	echoFunc := func(ctx context.Context, req TestReq) TestResp {
		return TestResp{Output: "echo: " + req.Input}
	}

	handler := NewJSONHandler(echoFunc)

	t.Run("success", func(t *testing.T) {
		req := TestReq{Input: "hello"}
		reqBytes, err := json.Marshal(req)
		require.NoError(t, err)

		respBytes, err := handler(context.Background(), reqBytes)
		require.NoError(t, err)

		var resp TestResp
		err = json.Unmarshal(respBytes, &resp)
		require.NoError(t, err)
		assert.Equal(t, "echo: hello", resp.Output)
	})

	t.Run("invalid JSON returns ErrorResponse", func(t *testing.T) {
		// NewJSONHandler now returns structured JSON error instead of Go error
		respBytes, err := handler(context.Background(), []byte("{invalid-json"))
		require.NoError(t, err) // No Go error
		require.NotNil(t, respBytes)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(respBytes, &errResp))
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error)
		assert.Equal(t, 400, errResp.Code)
		assert.Contains(t, errResp.Message, "unmarshal")
	})
}

func TestNewJSONHandler_WithPrototypeLookup(t *testing.T) {
	handler := NewJSONHandler(func(ctx context.Context, req PrototypeLookupRequest) PrototypeLookupResponse {
		return PerformPrototypeLookup(newCatalog(t), req)
	})

	reqBytes, err := json.Marshal(PrototypeLookupRequest{Key: "strlen"})
	require.NoError(t, err)

	respBytes, err := handler(context.Background(), reqBytes)
	require.NoError(t, err)

	var resp PrototypeLookupResponse
	require.NoError(t, json.Unmarshal(respBytes, &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "int strlen(string str)", resp.Signature)
}
