package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_RoundTrip(t *testing.T) {
	client := newTestService(t, nil).Client()

	resp, err := client.Get("http://localhost/app/heroes/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var env map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "Windstorm", env["data"]["name"])
}

func TestTransport_Post(t *testing.T) {
	svc := newTestService(t, nil)
	client := svc.Client()

	resp, err := client.Post("http://localhost/app/heroes", "application/json",
		strings.NewReader(`{"name":"Via Client"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "app/heroes/3", resp.Header.Get("Location"))

	// The mutation is visible through the service directly.
	assert.Equal(t, 3, svc.Database().Lookup("heroes").Len())
}

func TestTransport_Delete(t *testing.T) {
	client := newTestService(t, nil).Client()

	req, err := http.NewRequest(http.MethodDelete, "http://localhost/app/heroes/1", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestTransport_NotFoundStatus(t *testing.T) {
	client := newTestService(t, nil).Client()

	resp, err := client.Get("http://localhost/app/heroes/99")
	require.NoError(t, err, "HTTP-level errors must not become transport errors")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404 Not Found", resp.Status)
}
