package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simtrack/sit-collector/ent/server"
	"github.com/simtrack/sit-collector/pkg/database"
	"github.com/simtrack/sit-collector/pkg/railid"
	"github.com/simtrack/sit-collector/pkg/services"
	testdb "github.com/simtrack/sit-collector/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedStats uint64

func (f fixedStats) Dropped() uint64 { return uint64(f) }

func newTestServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)
	s := NewServer(client,
		services.NewServerService(client.Client),
		services.NewDispatchPostService(client.Client),
		services.NewJourneyService(client.Client),
		fixedStats(3), fixedStats(7))
	return s, client
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Router().ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_Status(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/status")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["stream_frames_dropped"])
	assert.EqualValues(t, 7, body["broker_frames_dropped"])
}

func TestServer_ListServers(t *testing.T) {
	s, client := newTestServer(t)
	svc := services.NewServerService(client.Client)
	_, err := svc.Upsert(t.Context(), services.ServerRecord{
		ID:              railid.ServerID("6390db9a000000000000de01"),
		ForeignID:       "6390db9a000000000000de01",
		Code:            "de1",
		Region:          server.RegionEUROPE,
		Scenery:         "classic",
		RegisteredSince: time.Date(2022, 12, 7, 18, 29, 46, 0, time.UTC),
	})
	require.NoError(t, err)

	w := get(t, s, "/api/v1/servers")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "de1", listed[0]["code"])
}

func TestServer_GetJourneyNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s, "/api/v1/journeys/run-unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
