package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

func InitDB(path string) {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database :", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	createSubmissionsTable := `
	CREATE TABLE IF NOT EXISTS submissions (
			"id" TEXT PRIMARY KEY,
			"received_at" TEXT NOT NULL,
			"field_labels" TEXT NOT NULL,
			"field_values" TEXT NOT NULL,
			"client_ip" TEXT
	);`

	if _, err := db.Exec(createSubmissionsTable); err != nil {
		log.Fatalf("InitDB(): Failed to create submissions table: %v", err)
	}
	log.Println("InitDB(): Init and create table successfully!")
}

func CloseDB() {
	if db != nil {
		db.Close()
	}
}
