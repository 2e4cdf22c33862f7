package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sockroom/sockroom-server/internal/core"
)

// RoomHandlers provides read-only HTTP handlers over the room directory.
// Rooms are created by WebSocket joins, never through this API.
type RoomHandlers struct {
	directory *core.Directory
	log       *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(directory *core.Directory, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		directory: directory,
		log:       logger,
	}
}

// RoomResponse represents a room in API responses.
type RoomResponse struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
}

// MemberResponse represents one presence entry in API responses.
type MemberResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListRooms returns all rooms with member counts.
// GET /api/rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	infos := h.directory.Rooms()

	rooms := make([]RoomResponse, 0, len(infos))
	for _, info := range infos {
		rooms = append(rooms, RoomResponse{Name: info.Name, Members: info.Members})
	}
	c.JSON(http.StatusOK, rooms)
}

// RoomMembers returns the presence snapshot of one room.
// GET /api/rooms/:name/members
func (h *RoomHandlers) RoomMembers(c *gin.Context) {
	name := c.Param("name")
	if !h.directory.Exists(name) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	}

	snapshot := h.directory.Members(name)
	members := make([]MemberResponse, 0, len(snapshot))
	for _, m := range snapshot {
		members = append(members, MemberResponse{Username: m.Username, ID: m.ConnID})
	}
	c.JSON(http.StatusOK, members)
}
