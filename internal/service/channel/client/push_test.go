package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gotomicro/ego/client/ehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPushClient(t *testing.T, handler http.HandlerFunc) *HTTPPushClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cli := ehttp.DefaultContainer().Build(ehttp.WithAddr(srv.URL))
	return NewHTTPPushClient(cli, "test-token")
}

func TestHTTPPushClient_Push(t *testing.T) {
	t.Parallel()

	t.Run("推送成功", func(t *testing.T) {
		t.Parallel()
		cli := newPushClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v2/bot/message/push", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			var req pushRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "U0001", req.To)
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "text", req.Messages[0].Type)
			assert.Equal(t, "セール開催中", req.Messages[0].Text)

			w.WriteHeader(http.StatusOK)
		})

		err := cli.Push(t.Context(), "U0001", "セール開催中")
		assert.NoError(t, err)
	})

	t.Run("非2xx按失败处理", func(t *testing.T) {
		t.Parallel()
		cli := newPushClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"message":"rate limited"}`))
		})

		err := cli.Push(t.Context(), "U0001", "セール開催中")
		assert.ErrorIs(t, err, ErrPushFailed)
	})
}
