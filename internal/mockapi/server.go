package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/buildstock/batchgo/internal/gateway"
	"github.com/buildstock/batchgo/internal/models"
	"github.com/gorilla/mux"
)

// Server is a development REST backend serving the batch resource family
// over an in-memory store. Responses use the { "data": ... } envelope the
// client layer expects.
type Server struct {
	*mux.Router
	store *gateway.MemoryGateway
}

// NewServer creates a mock backend over the given store.
func NewServer(store *gateway.MemoryGateway) *Server {
	s := &Server{
		Router: mux.NewRouter(),
		store:  store,
	}

	s.HandleFunc("/health", s.healthCheck).Methods("GET")

	s.HandleFunc("/batches/", s.listBatches).Methods("GET")
	s.HandleFunc("/batches/", s.createBatch).Methods("POST")
	s.HandleFunc("/batches/{id}", s.getBatch).Methods("GET")
	s.HandleFunc("/batches/{id}", s.updateBatch).Methods("PUT")
	s.HandleFunc("/batches/{id}", s.deleteBatch).Methods("DELETE")

	s.HandleFunc("/products/{id}", s.getProduct).Methods("GET")
	s.HandleFunc("/warehouses/{id}", s.getWarehouse).Methods("GET")

	return s
}

// healthCheck returns the health status of the API
func (s *Server) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// listBatches returns all batches
func (s *Server) listBatches(w http.ResponseWriter, req *http.Request) {
	batches, err := s.store.ListBatches(req.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch batches")
		return
	}
	respondData(w, http.StatusOK, batches)
}

// getBatch returns a single batch
func (s *Server) getBatch(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	batch, err := s.store.GetBatch(req.Context(), vars["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Batch not found")
		return
	}
	respondData(w, http.StatusOK, batch)
}

// createBatch creates a new batch
func (s *Server) createBatch(w http.ResponseWriter, req *http.Request) {
	var payload models.BatchPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	batch, err := s.store.CreateBatch(req.Context(), payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create batch")
		return
	}
	respondData(w, http.StatusCreated, batch)
}

// updateBatch updates an existing batch
func (s *Server) updateBatch(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var payload models.BatchPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	batch, err := s.store.UpdateBatch(req.Context(), vars["id"], payload)
	if err != nil {
		respondError(w, http.StatusNotFound, "Batch not found")
		return
	}
	respondData(w, http.StatusOK, batch)
}

// deleteBatch removes a batch
func (s *Server) deleteBatch(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	if err := s.store.DeleteBatch(req.Context(), vars["id"]); err != nil {
		respondError(w, http.StatusNotFound, "Batch not found")
		return
	}
	respondData(w, http.StatusOK, nil)
}

// getProduct returns a single product
func (s *Server) getProduct(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	product, err := s.store.GetProduct(req.Context(), vars["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondData(w, http.StatusOK, product)
}

// getWarehouse returns a single warehouse
func (s *Server) getWarehouse(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	warehouse, err := s.store.GetWarehouse(req.Context(), vars["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Warehouse not found")
		return
	}
	respondData(w, http.StatusOK, warehouse)
}

// respondData wraps the payload in the { "data": ... } envelope
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, map[string]interface{}{
		"data": data,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
