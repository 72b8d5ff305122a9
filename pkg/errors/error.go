package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// Unauthenticated is returned when a mutating call arrives without a valid session.
	Unauthenticated ErrorCode = "UNAUTHENTICATED"
	// SubscriptionRejected is returned when a session may not listen on a channel.
	SubscriptionRejected ErrorCode = "SUBSCRIPTION_REJECTED"
	// RateLimited is returned by rate limit hooks that refuse an action.
	RateLimited ErrorCode = "RATE_LIMITED"
	// InvalidOrder is returned for malformed order input. The book is never mutated.
	InvalidOrder ErrorCode = "INVALID_ORDER"
	// DuplicateOrder is returned when an ouid is already resting in the book.
	DuplicateOrder ErrorCode = "DUPLICATE_ORDER"
	// InvalidSnapshot is returned when a snapshot cannot be replayed.
	InvalidSnapshot ErrorCode = "INVALID_SNAPSHOT"
	// UnknownPair is returned when a command targets a pair this process does not host.
	UnknownPair ErrorCode = "UNKNOWN_PAIR"
	// InvalidAmount is returned when a decimal amount does not fit the pair precision.
	InvalidAmount ErrorCode = "INVALID_AMOUNT"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
	// RedisSetNXError represents an error when setting a value in Redis with SetNX.
	RedisSetNXError ErrorCode = "redis_setnx_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"

	// PebbleOpenError represents an error when opening the local snapshot database.
	PebbleOpenError ErrorCode = "pebble_open_error"

	// KafkaWriteError represents an error when writing messages to Kafka.
	KafkaWriteError ErrorCode = "kafka_write_error"
	// KafkaReadError represents an error when reading messages from Kafka.
	KafkaReadError ErrorCode = "kafka_read_error"
)

// New is a shorthand for NewErrorDetails with a typed code.
func New(code ErrorCode, message, field string) *ErrorDetails {
	return NewErrorDetails(message, string(code), field)
}
