package httpclient

import (
	"net/http"

	"github.com/GLCRealm/cyber-lane-reservations/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	TypeThreshold   = "threshold"
	TypeConsecutive = "consecutive"
	TypeErrorRate   = "error_rate"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case TypeThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case TypeErrorRate:
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
