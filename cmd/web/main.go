package main

import (
	"log"

	"dartsleague/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}
	if err := server.Run(); err != nil {
		log.Fatal(err.Error())
	}
}
