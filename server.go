// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cybrota/phonebook/contact"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Server exposes a Book over HTTP. The Book is not safe for concurrent use,
// so every handler goes through mu.
type Server struct {
	mu   sync.RWMutex
	book *contact.Book
}

func NewServer(book *contact.Book) *Server {
	return &Server{book: book}
}

// Router returns the mux with every route registered.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.HandleHealth).Methods("GET")
	r.HandleFunc("/contacts", s.HandleList).Methods("GET")
	r.HandleFunc("/contacts", s.HandleAdd).Methods("POST")
	r.HandleFunc("/contacts/{order}/{key}", s.HandleFind).Methods("GET")
	r.HandleFunc("/contacts/{order}/{key}", s.HandleDelete).Methods("DELETE")
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	n := s.book.Len()
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]int{"contacts": n})
}

func (s *Server) HandleList(w http.ResponseWriter, r *http.Request) {
	order := contact.NameOrder
	if q := r.URL.Query().Get("order"); q != "" {
		var err error
		if order, err = contact.ParseOrder(q); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	s.mu.RLock()
	records := make([]contact.Record, 0, s.book.Len())
	for rec := range s.book.All(order) {
		records = append(records, rec)
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, records)
}

func (s *Server) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var rec contact.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.book.Add(rec)
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) HandleFind(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	order, err := contact.ParseOrder(vars["order"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Find fills the lookup cache, which is safe for concurrent use.
	s.mu.RLock()
	rec, found := s.book.Find(order, vars["key"])
	s.mu.RUnlock()

	if !found {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	order, err := contact.ParseOrder(vars["order"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	rec, found := s.book.Delete(order, vars["key"])
	s.mu.Unlock()

	if !found {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// serve runs the API on addr until SIGINT or SIGTERM.
func serve(book *contact.Book, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(book).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}
