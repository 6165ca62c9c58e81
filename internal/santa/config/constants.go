package config

// Redis 키 상수.
const (
	// RedisKeyPrefix 는 상수다.
	RedisKeyPrefix     = "santa"
	RedisKeyLockPrefix = RedisKeyPrefix + ":lock"
	RedisKeyProcessing = RedisKeyPrefix + ":processing"
)

// Redis TTL 상수.
const (
	// RedisLockTTLSeconds 는 상수다.
	RedisLockTTLSeconds       = 30
	RedisProcessingTTLSeconds = 30
)

// 검증 관련 상수.
const (
	// ValidationMaxCurrencyLength 는 상수다.
	ValidationMaxCurrencyLength = 8
	KakaoMessageMaxLength       = 500
)

// 알림 상수.
const (
	// NotifyConcurrency 는 상수다.
	NotifyConcurrency = 4
)

// 명령 처리 상수.
const (
	// CommandTimeoutSeconds 는 상수다.
	CommandTimeoutSeconds = 10
)

// MQ 상수.
const (
	// MQBatchSize 는 상수다.
	MQBatchSize     = 5
	MQReadTimeoutMS = 5000
	MQStreamMaxLen  = 1000
)

// 기본 스트림 키 상수.
const (
	// DefaultInboundStreamKey 는 상수다.
	DefaultInboundStreamKey  = "kakao:secret-santa"
	DefaultOutboundStreamKey = "kakao:bot:reply"
)
