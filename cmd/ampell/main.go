package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ampell-lang/ampell/cmd/ampell/commands"
)

func main() {
	envfile := ".env"
	if custom := os.Getenv("AMPELL_ENV_FILE"); custom != "" {
		envfile = custom
	}
	if _, err := os.Stat(envfile); err == nil {
		if err := godotenv.Load(envfile); err != nil {
			log.Fatal("Error loading env file ", envfile, ": ", err)
		}
	}

	commands.Execute()
}
