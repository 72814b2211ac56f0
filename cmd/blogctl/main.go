package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	app := &cliApp{}
	err := newRootCmd(app).Execute()
	app.close()

	if err != nil {
		os.Exit(1)
	}
}
