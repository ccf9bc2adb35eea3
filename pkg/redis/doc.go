// Package redis provides the Redis connection helper for shield's persisted
// state, primarily the authz.RedisSettingStore holding the permission matrix.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // server unreachable after all retries
//	}
//	store := authz.NewRedisSettingStore(client, authz.WithRedisKeyPrefix("shield:"))
//
// The matrix must survive restarts, so deployments should back the chosen
// Redis database with persistence (AOF or RDB).
package redis
