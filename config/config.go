package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env when present. A missing file just means everything comes
// from the real environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: %v", err)
		}
		return
	}
	log.Println("config: loaded .env")
}

// Addr returns the listen address for the server.
func Addr() string {
	if v := os.Getenv("PONG_ADDR"); v != "" {
		return v
	}
	return ":8080"
}
