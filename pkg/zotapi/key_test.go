package zotapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CurrentKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/keys/current" || r.Header.Get("Zotero-API-Version") != "3" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"key":"xyz","userId":8071408,"username":"ju6ge","access":{"user":{"library":true,"files":true,"notes":true},"groups":{"all":{"library":true},"42":{"library":false}}}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "xyz", time.Minute, logging.MustGetLogger("zotapi_test"))
	key, err := c.CurrentKey()
	require.NoError(t, err)
	assert.Equal(t, int64(8071408), key.UserId)
	assert.Equal(t, "ju6ge", key.Username)

	assert.True(t, key.CanRead("users/8071408"))
	assert.False(t, key.CanRead("users/1"))
	assert.True(t, key.CanRead("groups/7"))
	assert.False(t, key.CanRead("groups/42"))
	assert.False(t, key.CanRead("8071408"))
	assert.False(t, key.CanRead("people/8071408"))
}
