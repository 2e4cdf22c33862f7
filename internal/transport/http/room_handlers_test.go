package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRooms(t *testing.T) {
	ts, ctrl := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/rooms")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rooms []RoomResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rooms))
	assert.Empty(t, rooms)

	a := ctrl.Connect()
	b := ctrl.Connect()
	require.NoError(t, ctrl.Join(a.ID, "lobby", "alice"))
	require.NoError(t, ctrl.Join(b.ID, "lobby", "bob"))

	resp, err = ts.Client().Get(ts.URL + "/api/rooms")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rooms))
	assert.Equal(t, []RoomResponse{{Name: "lobby", Members: 2}}, rooms)
}

func TestRoomMembers(t *testing.T) {
	ts, ctrl := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/rooms/ghost/members")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	a := ctrl.Connect()
	b := ctrl.Connect()
	require.NoError(t, ctrl.Join(a.ID, "lobby", "alice"))
	require.NoError(t, ctrl.Join(b.ID, "lobby", "bob"))

	resp, err = ts.Client().Get(ts.URL + "/api/rooms/lobby/members")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var members []MemberResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&members))
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].Username)
	assert.Equal(t, a.ID, members[0].ID)
	assert.Equal(t, "bob", members[1].Username)
}

func TestCORSHeaders(t *testing.T) {
	ts, _ := startTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/rooms", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
