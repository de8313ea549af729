package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the token denylist, or nil when
// REDIS_URL is unset. The server runs fine without redis; logout then only
// clears the cookie instead of revoking the token server-side.
func ConnectRedis() *redis.Client {
	raw := strings.TrimSpace(os.Getenv("REDIS_URL"))
	if raw == "" {
		log.Println("REDIS_URL not set; token revocation disabled")
		return nil
	}

	opts, err := redis.ParseURL(raw)
	if err != nil {
		log.Printf("warning: invalid REDIS_URL, token revocation disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis unreachable, token revocation disabled: %v", err)
		return nil
	}

	return client
}
