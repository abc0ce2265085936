package ws

import (
	"log"
	"net/http"
	"sync"

	"coffeepos/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StatsHub pushes the day's running totals to connected dashboards.
// Every completed checkout broadcasts the fresh aggregate, so staff
// screens never poll.
type StatsHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.DailyStatistic
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// auth happens in middleware before the upgrade
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewStatsHub() *StatsHub {
	return &StatsHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.DailyStatistic, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *StatsHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case stat := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(stat); err != nil {
					log.Printf("ws write failed, dropping client: %v", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast never blocks checkout: if the hub is backed up the update
// is dropped, the next checkout pushes a fresher one anyway.
func (h *StatsHub) Broadcast(stat *entity.DailyStatistic) {
	select {
	case h.broadcast <- stat:
	default:
	}
}

// Serve upgrades the request, sends the current snapshot, then keeps
// the connection registered until the client goes away.
func (h *StatsHub) Serve(c *gin.Context, snapshot *entity.DailyStatistic) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	if snapshot != nil {
		if err := conn.WriteJSON(snapshot); err != nil {
			conn.Close()
			return
		}
	}

	h.register <- conn

	// read loop only to notice the close
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- conn
				return
			}
		}
	}()
}
