package config

import "fmt"

// TelemetryConfig 는 OTel 기반 관측 설정이다.
type TelemetryConfig struct {
	Enabled     bool
	ServiceName string
}

// ReadTelemetryConfigFromEnv: OTel 활성화 여부와 서비스 이름을 환경 변수에서 읽어옵니다.
func ReadTelemetryConfigFromEnv(defaultServiceName string) (TelemetryConfig, error) {
	enabled, err := BoolFromEnv("OTEL_ENABLED", false)
	if err != nil {
		return TelemetryConfig{}, fmt.Errorf("read OTEL_ENABLED failed: %w", err)
	}

	return TelemetryConfig{
		Enabled:     enabled,
		ServiceName: StringFromEnv("OTEL_SERVICE_NAME", defaultServiceName),
	}, nil
}
