package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"dartsleague/internal/wshub"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// handleLive streams saved games to a WebSocket client. Frames sent by the
// client are discarded.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	if s.Hub == nil {
		http.Error(w, "Live feed disabled", http.StatusServiceUnavailable)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(s.AllowedOrigins),
	})
	if err != nil {
		s.Log.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	client := &wshub.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	welcome, _ := json.Marshal(wshub.ServerMessage{Type: wshub.TypeWelcome, ClientID: client.ID})
	client.Send <- welcome

	s.Hub.Register(client)
	defer s.Hub.Unregister(client.ID)
	s.Metrics.liveClients.Inc()
	defer s.Metrics.liveClients.Dec()

	ctx := conn.CloseRead(r.Context())
	client.WritePump(ctx)
	conn.Close(websocket.StatusNormalClosure, "")
}

// originPatterns turns CORS origins into the host patterns websocket.Accept
// matches against.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
			continue
		}
		patterns = append(patterns, o)
	}
	return patterns
}
