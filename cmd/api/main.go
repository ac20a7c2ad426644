package main

import (
	"log"
	"os"

	"sroireport/cmd"
	"sroireport/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	lg := logger.New()
	lg.Infow("starting api", "commitHash", os.Getenv("commit_hash"))

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	port, err := cmd.Port()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
