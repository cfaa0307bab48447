package http

import (
	"net/http"

	"roomshare-backend/internal/service"
)

type RoomHandler struct {
	rooms service.RoomService
}

func NewRoomHandler(rooms service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// Roommates returns the viewer's participant picker: everyone in the room
// except the viewer.
func (h *RoomHandler) Roommates(w http.ResponseWriter, r *http.Request) {
	people, err := h.rooms.ListRoommates(r.Context(), ViewerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, people)
}
