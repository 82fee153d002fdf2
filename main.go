package main

import (
	"os"

	"github.com/itsiftikar02/Hospital-Management-System/config"
	"github.com/itsiftikar02/Hospital-Management-System/menus"
	"github.com/itsiftikar02/Hospital-Management-System/repository"
	"github.com/itsiftikar02/Hospital-Management-System/seed"
)

func main() {
	cfg := config.Load()
	db := config.MustOpen(cfg.DBPath)
	repo := repository.New(db)

	shell := menus.New(db, repo, os.Stdin, os.Stdout)
	if shell.Confirm("Do you want to add initial sample data (for testing)?") {
		seed.SampleData(repo)
	}

	shell.Loop()
}
