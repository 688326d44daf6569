package realtime

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/scolaris/scolaris/internal/app/models"
)

// Hub maintains the set of connected clients keyed by user id and pushes
// freshly written notifications to the recipient's open connections.
// Delivery is best effort: the persistent notification record is the source
// of truth and a slow or absent client never blocks the dispatcher.
type Hub struct {
	// Registered clients organized by user ID
	clients map[int64]map[*Client]bool

	// Outbound notifications waiting for fan-out
	publish chan *models.Notification

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		publish:    make(chan *models.Notification, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub loop, handling registrations and pushes
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case notification := <-h.publish:
			h.pushNotification(notification)
		}
	}
}

// Publish queues a notification for delivery to the recipient's open
// connections. Never blocks; drops when the queue is full.
func (h *Hub) Publish(notification *models.Notification) {
	select {
	case h.publish <- notification:
	default:
		h.logger.Warn().
			Int64("recipientUserID", notification.RecipientUserID).
			Msg("Realtime queue full, notification push dropped")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Realtime client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[client.userID]; ok {
		if _, ok := conns[client]; ok {
			delete(conns, client)
			close(client.send)
			if len(conns) == 0 {
				delete(h.clients, client.userID)
			}
		}
	}

	h.logger.Info().Int64("userID", client.userID).Msg("Realtime client unregistered")
}

func (h *Hub) pushNotification(notification *models.Notification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal notification for push")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[notification.RecipientUserID] {
		select {
		case client.send <- payload:
		default:
			// Client write buffer full; it will be cleaned up by its pump
			h.logger.Debug().
				Int64("userID", notification.RecipientUserID).
				Msg("Dropping push to slow realtime client")
		}
	}
}
