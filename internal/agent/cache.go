package agent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vampirenirmal/plotkit/internal/storage"
)

// ResponseCache stores model completions keyed by prompt hash. Validation
// prompts are deterministic for a given story and structure, so repeat
// analyses can skip the API round trip entirely.
type ResponseCache struct {
	store  storage.Storage
	ttl    time.Duration
	logger *slog.Logger
}

type cachedCompletion struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// NewResponseCache creates a cache over store. Entries older than ttl are
// treated as misses.
func NewResponseCache(store storage.Storage, ttl time.Duration, logger *slog.Logger) *ResponseCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResponseCache{
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "response_cache"),
	}
}

// Get returns the cached completion for prompt, if present and fresh.
func (c *ResponseCache) Get(ctx context.Context, prompt string) (string, bool) {
	key := hashPrompt(prompt)

	data, err := c.store.Load(ctx, cachePath(key))
	if err != nil {
		c.logger.Debug("cache miss", "key", key)
		return "", false
	}

	var cached cachedCompletion
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("cache entry unreadable", "key", key, "error", err)
		return "", false
	}

	age := time.Since(cached.Timestamp)
	if age > c.ttl {
		c.logger.Debug("cache entry expired", "key", key, "age", age)
		return "", false
	}

	c.logger.Debug("cache hit", "key", key, "age", age)
	return cached.Response, true
}

// Set stores a completion for prompt.
func (c *ResponseCache) Set(ctx context.Context, prompt, response string) error {
	key := hashPrompt(prompt)

	data, err := json.Marshal(cachedCompletion{
		Response:  response,
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshaling cached completion: %w", err)
	}

	if err := c.store.Save(ctx, cachePath(key), data); err != nil {
		return fmt.Errorf("saving cached completion: %w", err)
	}
	return nil
}

func cachePath(key string) string {
	return fmt.Sprintf("cache/completions/%s.json", key)
}

func hashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// CachingClient wraps an AIClient with a ResponseCache. Cache write
// failures are logged, not returned; a completion that cannot be cached
// is still a completion.
type CachingClient struct {
	inner  AIClient
	cache  *ResponseCache
	logger *slog.Logger
}

// NewCachingClient wraps inner with cache.
func NewCachingClient(inner AIClient, cache *ResponseCache, logger *slog.Logger) *CachingClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingClient{
		inner:  inner,
		cache:  cache,
		logger: logger.With("component", "caching_client"),
	}
}

func (c *CachingClient) Complete(ctx context.Context, prompt string) (string, error) {
	if response, ok := c.cache.Get(ctx, prompt); ok {
		return response, nil
	}

	response, err := c.inner.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, prompt, response); err != nil {
		c.logger.Warn("failed to cache completion", "error", err)
	}
	return response, nil
}
