package realtime

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/goalfield/field-scheduler/internal/metrics"
)

const DefaultChannel = "bookings:events"

// RedisBridge routes published events through a redis channel so every
// API instance's hub sees them, not just the one handling the request.
// When redis is unreachable the event goes straight to the local hub;
// the notification layer never fails a booking mutation.
type RedisBridge struct {
	rdb     *redis.Client
	channel string
	hub     *Hub
	log     zerolog.Logger
}

func NewRedisBridge(rdb *redis.Client, channel string, hub *Hub, log zerolog.Logger) *RedisBridge {
	if channel == "" {
		channel = DefaultChannel
	}

	b := &RedisBridge{
		rdb:     rdb,
		channel: channel,
		hub:     hub,
		log:     log.With().Str("component", "realtime_redis").Logger(),
	}

	go b.subscribe()
	return b
}

func (b *RedisBridge) Publish(event string, payload any) {
	raw, err := json.Marshal(Message{Event: event, Data: payload})
	if err != nil {
		b.log.Error().Err(err).Str("event", event).Msg("failed to encode event")
		return
	}

	metrics.IncEventPublished(event)

	if err := b.rdb.Publish(context.Background(), b.channel, raw).Err(); err != nil {
		b.log.Warn().Err(err).Str("event", event).Msg("redis publish failed, broadcasting locally")
		b.hub.broadcastRaw(raw)
	}
}

func (b *RedisBridge) subscribe() {
	pubsub := b.rdb.Subscribe(context.Background(), b.channel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		b.hub.broadcastRaw([]byte(msg.Payload))
	}
}
