package main

import (
	"encoding/json"
	"log"
	"net/http"

	"pong/config"
	"pong/network"
	"pong/session"
)

func main() {
	config.Load()

	mm := session.NewMatchmaker()

	mux := http.NewServeMux()
	mux.Handle("/ws", network.NewHandler(mm))
	mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(mm.Sessions()); err != nil {
			log.Println("sessions list:", err)
		}
	})

	addr := config.Addr()
	log.Printf("listening on %s (ws endpoint: /ws)", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
