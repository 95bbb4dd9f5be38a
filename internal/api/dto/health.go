package dto

import "time"

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Libraries map[string]string `json:"libraries"`
	Timestamp time.Time         `json:"timestamp"`
}
