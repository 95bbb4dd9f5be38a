package handlers

import (
	"net/http"
	"scenic-seat-service/internal/api/dto"
	"scenic-seat-service/internal/platform/logging"
	"scenic-seat-service/internal/ports"
)

// CityHandler exposes the known cities so clients can fill origin and destination.
type CityHandler struct {
	Repo ports.CityRepository
}

func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Repo.ListCities(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("list cities failed")
		WriteError(w, r, http.StatusInternalServerError, CodeInternal, "internal server error")
		return
	}

	res := dto.ListCitiesResponse{
		Cities: make([]dto.CityResponse, 0, len(cities)),
	}
	for _, c := range cities {
		res.Cities = append(res.Cities, dto.CityResponse{
			Name: c.Name,
			Lat:  c.Lat,
			Lon:  c.Lon,
			TZ:   c.TZ,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
