package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"parkir/internal/entities"
	apierrors "parkir/internal/errors"
	"parkir/internal/service"
	"parkir/internal/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ParkingHandler struct {
	Service *service.ParkingService
}

func NewParkingHandler(svc *service.ParkingService) *ParkingHandler {
	return &ParkingHandler{Service: svc}
}

func (h *ParkingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateParkingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.PlatNomor == "" {
		http.Error(w, "plat_nomor is required", http.StatusBadRequest)
		return
	}
	if _, ok := utils.ToStoredCategory(req.JenisKendaraan); !ok {
		http.Error(w, "jenis_kendaraan must be roda2 or roda4", http.StatusBadRequest)
		return
	}
	if req.Durasi < 1 {
		http.Error(w, "durasi must be at least 1", http.StatusBadRequest)
		return
	}

	res, err := h.Service.Create(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ParkingHandler) List(w http.ResponseWriter, r *http.Request) {
	query := entities.ListParkingQuery{
		Page:           intQueryParam(r, "page", 1),
		Limit:          intQueryParam(r, "limit", 10),
		Search:         r.URL.Query().Get("search"),
		JenisKendaraan: r.URL.Query().Get("jenis_kendaraan"),
	}

	res, err := h.Service.FindAll(query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ParkingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := h.Service.FindOne(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ParkingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req entities.UpdateParkingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.JenisKendaraan != nil {
		if _, valid := utils.ToStoredCategory(*req.JenisKendaraan); !valid {
			http.Error(w, "jenis_kendaraan must be roda2 or roda4", http.StatusBadRequest)
			return
		}
	}
	if req.Durasi != nil && *req.Durasi < 1 {
		http.Error(w, "durasi must be at least 1", http.StatusBadRequest)
		return
	}

	res, err := h.Service.Update(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ParkingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := h.Service.Remove(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ParkingHandler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.TotalRevenue()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func intQueryParam(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	var httpErr *apierrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	logrus.WithError(err).Error("request failed")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
