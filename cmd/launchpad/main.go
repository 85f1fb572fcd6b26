package main

import (
	"log"

	"github.com/MrSnakeDoc/launchpad/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ launchpad failed to start: %v", err)
	}
}
