// Package notify publishes operation outcomes for presentation layers to
// render, typically as toasts on the dashboard.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	stdsync "sync"
	"time"

	infraconfig "github.com/africommerce/backend/internal/infrastructure/config"
	appsync "github.com/africommerce/backend/internal/sync"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultChannel      = "africommerce:notifications"
	defaultCloseTimeout = 5 * time.Second
)

// RedisNotifier implements the outcome Notifier using Redis Pub/Sub.
// Notify is best-effort: publish failures are logged and swallowed so a
// broken broker can never fail a dashboard operation.
type RedisNotifier struct {
	client     *redis.Client
	ownsClient bool
	channel    string
	logger     *zap.Logger
	cancelFn   context.CancelFunc
	doneCh     chan struct{}
	doneOnce   stdsync.Once
	mu         stdsync.Mutex
	isRunning  bool
}

// RedisNotifierOption is a functional option for configuring RedisNotifier
type RedisNotifierOption func(*RedisNotifier)

// WithChannel sets the Pub/Sub channel name
func WithChannel(channel string) RedisNotifierOption {
	return func(n *RedisNotifier) {
		n.channel = channel
	}
}

// WithNotifierLogger sets the logger for the notifier
func WithNotifierLogger(logger *zap.Logger) RedisNotifierOption {
	return func(n *RedisNotifier) {
		n.logger = logger
	}
}

// NewRedisNotifier creates a notifier with its own Redis client
func NewRedisNotifier(cfg infraconfig.RedisConfig, opts ...RedisNotifierOption) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	notifier := &RedisNotifier{
		client:     client,
		ownsClient: true,
		channel:    defaultChannel,
		logger:     zap.NewNop(),
		doneCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(notifier)
	}
	return notifier, nil
}

// NewRedisNotifierWithClient creates a notifier backed by an existing client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisNotifierWithClient(client *redis.Client, opts ...RedisNotifierOption) *RedisNotifier {
	notifier := &RedisNotifier{
		client:     client,
		ownsClient: false,
		channel:    defaultChannel,
		logger:     zap.NewNop(),
		doneCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(notifier)
	}
	return notifier
}

// Notify publishes an outcome to the notification channel
func (n *RedisNotifier) Notify(ctx context.Context, outcome appsync.Outcome) {
	data, err := json.Marshal(outcome)
	if err != nil {
		n.logger.Error("Failed to marshal outcome",
			zap.String("kind", string(outcome.Kind)),
			zap.Error(err))
		return
	}

	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		n.logger.Warn("Failed to publish outcome",
			zap.String("channel", n.channel),
			zap.Error(err))
		return
	}

	n.logger.Debug("Published outcome",
		zap.String("kind", string(outcome.Kind)),
		zap.String("message", outcome.Message))
}

// Subscribe listens for outcomes and invokes the callback for each one.
// It blocks until the context is cancelled, so call it in a goroutine.
func (n *RedisNotifier) Subscribe(ctx context.Context, callback func(outcome appsync.Outcome)) error {
	n.mu.Lock()
	if n.isRunning {
		n.mu.Unlock()
		return fmt.Errorf("subscription already running")
	}
	n.isRunning = true
	n.mu.Unlock()

	subCtx, cancel := context.WithCancel(ctx)
	n.mu.Lock()
	n.cancelFn = cancel
	n.mu.Unlock()

	pubsub := n.client.Subscribe(subCtx, n.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(subCtx); err != nil {
		n.mu.Lock()
		n.isRunning = false
		n.mu.Unlock()
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	n.logger.Info("Subscribed to notification channel",
		zap.String("channel", n.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-subCtx.Done():
			n.mu.Lock()
			n.isRunning = false
			n.mu.Unlock()
			n.markDone()
			return subCtx.Err()
		case msg, ok := <-ch:
			if !ok {
				n.logger.Warn("Notification channel closed")
				n.mu.Lock()
				n.isRunning = false
				n.mu.Unlock()
				n.markDone()
				return nil
			}

			var outcome appsync.Outcome
			if err := json.Unmarshal([]byte(msg.Payload), &outcome); err != nil {
				n.logger.Error("Failed to unmarshal outcome",
					zap.String("payload", msg.Payload),
					zap.Error(err))
				continue
			}

			go func(o appsync.Outcome) {
				defer func() {
					if r := recover(); r != nil {
						n.logger.Error("Panic in notification callback",
							zap.Any("panic", r))
					}
				}()
				callback(o)
			}(outcome)
		}
	}
}

func (n *RedisNotifier) markDone() {
	n.doneOnce.Do(func() {
		close(n.doneCh)
	})
}

// Close releases any resources held by the notifier
func (n *RedisNotifier) Close() error {
	n.mu.Lock()
	cancelFn := n.cancelFn
	n.mu.Unlock()

	if cancelFn != nil {
		cancelFn()
		select {
		case <-n.doneCh:
		case <-time.After(defaultCloseTimeout):
			n.logger.Warn("Timeout waiting for subscription to stop")
		}
	}

	if n.ownsClient {
		return n.client.Close()
	}
	return nil
}

// Ensure RedisNotifier implements Notifier
var _ appsync.Notifier = (*RedisNotifier)(nil)
