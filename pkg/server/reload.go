package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadPath is the WebSocket endpoint the reload script connects to.
const ReloadPath = "/_htmldoom/reload"

// ReloadMessageType is the type of a reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
)

// ReloadMessage is sent to browsers over the reload WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
}

// reloadHub tracks browsers connected to the reload endpoint.
type reloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

func newReloadHub() *reloadHub {
	return &reloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview only
			},
		},
	}
}

// ServeHTTP upgrades the request and holds the connection until the client
// goes away.
func (h *reloadHub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *reloadHub) notifyReload() {
	h.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

func (h *reloadHub) notifyError(msg string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

func (h *reloadHub) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			c.Close()
		}
	}
}

func (h *reloadHub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *reloadHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
	}
}

// reloadScript is injected before </body> of served pages when reload is
// enabled.
const reloadScript = `<script>
(function() {
    var delay = 1000;
    function connect() {
        var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(proto + '//' + location.host + '` + ReloadPath + `');
        ws.onopen = function() { delay = 1000; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            if (msg.type === 'reload') {
                location.reload();
            } else if (msg.type === 'error') {
                console.error('[htmldoom]', msg.error);
            }
        };
        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
        ws.onerror = function() { ws.close(); };
    }
    connect();
})();
</script>`
