package handlers

import (
	"net/http"
	"runtime/debug"
	"scenic-seat-service/internal/api/dto"
	"time"
)

const (
	serviceName    = "Scenic Seat API"
	serviceVersion = "1.0.0"
)

// Root identifies the service.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.RootResponse{Message: serviceName, Version: serviceVersion})
}

// Health reports liveness and the versions of the linked modules.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Version:   serviceVersion,
		Libraries: libraryVersions(),
		Timestamp: time.Now().UTC(),
	})
}

func libraryVersions() map[string]string {
	libs := map[string]string{}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return libs
	}

	libs["go"] = info.GoVersion
	for _, dep := range info.Deps {
		if dep.Replace != nil {
			dep = dep.Replace
		}
		libs[dep.Path] = dep.Version
	}
	return libs
}
