package api

import "github.com/gorilla/mux"

// NewRouter wires the parking routes. The revenue route is registered ahead
// of the id routes so the literal "total" segment is not captured as an id.
func NewRouter(h *ParkingHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/parking", h.Create).Methods("POST")
	r.HandleFunc("/parking", h.List).Methods("GET")
	r.HandleFunc("/parking/total/revenue", h.TotalRevenue).Methods("GET")
	r.HandleFunc("/parking/{id}", h.GetByID).Methods("GET")
	r.HandleFunc("/parking/{id}", h.Update).Methods("PATCH")
	r.HandleFunc("/parking/{id}", h.Delete).Methods("DELETE")

	return r
}
