package config

// 카카오톡 메시지 관련 상수.
const (
	// KakaoMessageMaxLength: 카카오톡 메시지 최대 길이 제한
	KakaoMessageMaxLength = 500
)

// MQ 공통 상수.
const (
	// MQBatchSize: 메시지 큐 배치 크기
	MQBatchSize = 5
	// MQReadTimeoutMS: 메시지 큐 읽기 타임아웃(ms)
	MQReadTimeoutMS = 5000
	// MQConsumerConcurrency: 메시지 큐 소비 동시성
	MQConsumerConcurrency = 5
	// MQStreamMaxLen: 스트림 최대 길이
	MQStreamMaxLen = 1000
)

