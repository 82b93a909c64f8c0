package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"github.com/rgehrsitz/planrank/internal/server"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := server.NewHandler()

	log.Printf("planrank server starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.Handle); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
