package main

import (
	"log"
	"os"

	"github.com/gnomegl/gitscore/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Configure logger to only show the message
	log.SetFlags(0)
	_ = godotenv.Load()

	app := cli.NewApp(cli.Run, cli.Serve)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
