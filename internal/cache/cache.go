// Package cache keeps analysed reports in Redis keyed by a fingerprint of
// the recording, the job and the policy tables. Analysis is deterministic,
// so an identical input can skip the engine entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NamelessFaceless/xivanalysis/internal/report"
)

// DefaultPrefix is prepended to every key.
const DefaultPrefix = "xiva:report:"

// DefaultTTL is how long cached reports live.
const DefaultTTL = 24 * time.Hour

// Cache is a report cache over a Redis client.
type Cache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// New creates a cache. A zero ttl means entries never expire.
func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: DefaultPrefix, ttl: ttl}
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr string, ttl time.Duration) (*Cache, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return New(client, ttl), client, nil
}

// Fingerprint identifies one analysis input.
func Fingerprint(recording []byte, job, policyDigest string) string {
	h := sha256.New()
	h.Write(recording)
	h.Write([]byte{0x00})
	h.Write([]byte(job))
	h.Write([]byte{0x00})
	h.Write([]byte(policyDigest))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) key(fingerprint string) string {
	return c.prefix + fingerprint
}

// Get returns the cached report for fingerprint. A miss returns (nil, nil).
func (c *Cache) Get(ctx context.Context, fingerprint string) (*report.Report, error) {
	if fingerprint == "" {
		return nil, errors.New("fingerprint cannot be empty")
	}

	data, err := c.client.Get(ctx, c.key(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from Redis: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}
	return &rep, nil
}

// Set stores a sealed report under fingerprint.
func (c *Cache) Set(ctx context.Context, fingerprint string, rep *report.Report) error {
	if fingerprint == "" {
		return errors.New("fingerprint cannot be empty")
	}
	if rep == nil {
		return errors.New("report cannot be nil")
	}

	data, err := report.MarshalCanonical(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := c.client.Set(ctx, c.key(fingerprint), string(data), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set report in Redis: %w", err)
	}
	return nil
}

// Forget drops a cached report.
func (c *Cache) Forget(ctx context.Context, fingerprint string) error {
	if err := c.client.Del(ctx, c.key(fingerprint)).Err(); err != nil {
		return fmt.Errorf("failed to delete report from Redis: %w", err)
	}
	return nil
}
