package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

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
	// RedisListError represents an error on a list command (LPUSH, LRANGE, LTRIM).
	RedisListError ErrorCode = "redis_list_error"
	// RedisScanError represents an error when iterating the keyspace.
	RedisScanError ErrorCode = "redis_scan_error"
	// RedisMemoryUsageError represents an error when reading the memory usage of a key.
	RedisMemoryUsageError ErrorCode = "redis_memory_usage_error"
	// RedisInfoError represents an error when reading server statistics.
	RedisInfoError ErrorCode = "redis_info_error"

	// CacheDecodeError represents a cached bucket that could not be decoded.
	CacheDecodeError ErrorCode = "cache_decode_error"
	// CacheEncodeError represents bars that could not be encoded for the cache.
	CacheEncodeError ErrorCode = "cache_encode_error"

	// PartitionReadError represents a failure reading a month partition.
	PartitionReadError ErrorCode = "partition_read_error"
	// PartitionWriteError represents a failure writing a month partition.
	PartitionWriteError ErrorCode = "partition_write_error"
	// PartitionDeleteError represents a failure deleting month partitions.
	PartitionDeleteError ErrorCode = "partition_delete_error"
	// PartitionFormatError represents an unknown partition file format.
	PartitionFormatError ErrorCode = "partition_format_error"

	// UpstreamRequestError represents a failure building or sending an upstream request.
	UpstreamRequestError ErrorCode = "upstream_request_error"
	// UpstreamStatusError represents a non-2xx upstream response.
	UpstreamStatusError ErrorCode = "upstream_status_error"
	// UpstreamDecodeError represents an upstream body that could not be decoded.
	UpstreamDecodeError ErrorCode = "upstream_decode_error"

	// SettingInvalidError represents a rejected runtime setting value.
	SettingInvalidError ErrorCode = "setting_invalid_error"
)
