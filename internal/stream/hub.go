package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans assistant messages and spot-change notices out to the
// websocket clients of a user. With Redis configured, broadcasts also
// go through pub/sub so every process instance reaches its clients.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Username string
	Send     chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		ctx := context.Background()
		pubsub := redisClient.PSubscribe(ctx, "assist:*:broadcast")
		// wait for the subscription confirmation so broadcasts issued
		// right after construction are not lost
		if _, err := pubsub.Receive(ctx); err != nil {
			log.Printf("redis subscribe error: %v", err)
		}
		go h.readPubSub(pubsub)
	}
	return h
}

func (h *Hub) Register(username string) *Client {
	client := &Client{
		Username: username,
		Send:     make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[username] == nil {
		h.clients[username] = map[*Client]struct{}{}
	}
	h.clients[username][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if userClients, ok := h.clients[client.Username]; ok {
		delete(userClients, client)
		if len(userClients) == 0 {
			delete(h.clients, client.Username)
		}
	}
	close(client.Send)
}

// Broadcast sends payload to every client of username. With Redis
// configured delivery goes through pub/sub only: the publish loops back
// into this process's subscription, which hands it to local clients, so
// each client sees the message exactly once.
func (h *Hub) Broadcast(username string, payload []byte) {
	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(username), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
		return
	}
	h.deliver(username, payload)
}

func (h *Hub) deliver(username string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[username]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) readPubSub(pubsub *redis.PubSub) {
	defer pubsub.Close()
	for msg := range pubsub.Channel() {
		h.deliver(usernameFromChannel(msg.Channel), []byte(msg.Payload))
	}
}

func redisChannel(username string) string {
	return "assist:" + username + ":broadcast"
}

func usernameFromChannel(ch string) string {
	// assist:{username}:broadcast
	const prefix = "assist:"
	const suffix = ":broadcast"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
