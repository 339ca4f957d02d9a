package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

func main() {
	var dsn, migrationsPath string
	var down bool

	flag.StringVar(&dsn, "dsn", "", "postgres connection string")
	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to migrations directory")
	flag.BoolVar(&down, "down", false, "roll back all migrations instead of applying")
	flag.Parse()

	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		panic("dsn is required: pass --dsn or set DATABASE_URL")
	}

	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		panic(err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		panic(err)
	}
	if dirty {
		color.Red("database is dirty at version %d, fix it manually", version)
		os.Exit(1)
	}

	if down {
		if err := m.Down(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				color.Yellow("no migrations to roll back")
				return
			}
			panic(err)
		}
		color.Green("migrations rolled back")
		return
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			color.Yellow("no migrations to apply")
			return
		}
		panic(err)
	}

	newVersion, _, _ := m.Version()
	fmt.Printf("%s migrations applied, schema version %s\n",
		color.GreenString("➜"), color.New(color.Bold).Sprintf("%d", newVersion))
}
