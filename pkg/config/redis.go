package config

// RedisConfig holds connection settings for the Redis instance backing
// the dedup cache, rate-limit coordination, and circuit breaker state.
type RedisConfig struct {
	Addr        string `yaml:"addr"`
	PasswordEnv string `yaml:"password_env"`
	DB          int    `yaml:"db"`
}

// DefaultRedisConfig returns the built-in Redis defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:        "localhost:6379",
		PasswordEnv: "REDIS_PASSWORD",
		DB:          0,
	}
}
