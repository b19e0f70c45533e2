package preview

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/restaurant"
)

// liveResponse is the outgoing WebSocket message format.
type liveResponse struct {
	Type  string `json:"type"` // "html" or "error"
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleWebSocket renders every record frame it receives. With ?key= set,
// each valid record is also saved as that draft, so the form state survives
// a reload.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("preview: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRecordBytes)

	key := r.URL.Query().Get("key")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("preview: websocket read: %v", err)
			}
			return
		}

		rec, err := restaurant.Decode(bytes.NewReader(msg), restaurant.FormatJSON)
		if err != nil {
			h.send(conn, liveResponse{Type: "error", Error: "invalid record: " + err.Error()})
			continue
		}

		if key != "" {
			if _, err := h.drafts.Save(r.Context(), key, rec); err != nil {
				h.send(conn, liveResponse{Type: "error", Error: "saving draft: " + err.Error()})
				continue
			}
		}

		h.send(conn, liveResponse{Type: "html", HTML: page.Generate(rec, h.opts)})
	}
}

func (h *Handler) send(conn *websocket.Conn, resp liveResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("preview: websocket write: %v", err)
	}
}
