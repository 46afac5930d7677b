// Command admin: tugas operator yang tidak dibuka lewat HTTP
// (registration code, reset password, hapus akun, reaper manual).
package main

import (
	"log"
	"os"

	"planner_backend/internals/configs"
	database "planner_backend/internals/databases"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lshortfile)

	configs.LoadEnv()
	cfg := configs.Load()

	db, err := database.Open(cfg)
	errAndDie(err)
	defer database.Close(db)
	errAndDie(database.Migrate(db))

	cli := &commandLine{db: db, out: os.Stdout}
	if err := cli.run(os.Args[1:]); err != nil {
		if err != errHelp {
			logger.Printf("error: %s", err)
		}
		database.Close(db)
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
