package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

const migrationsDir = "migrations"

func newMigrate(rootDir string, dsn string) *migrate.Migrate {
	sourceURL := "file://" + path.Join(rootDir, migrationsDir)
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the migrate command with up, down, force and version sub commands.
// The dsn must enable multiStatements.
func MigrateCommand(dsn string) *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "database migration",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(".", dsn).Up())
			},
		},
		&cobra.Command{
			Use:   "down [N]",
			Short: "apply N down migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return ignoreNoChange(newMigrate(".", dsn).Steps(-n))
			},
		},
		&cobra.Command{
			Use:   "force [VERSION]",
			Short: "set the version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return newMigrate(".", dsn).Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current version",
			RunE: func(cmd *cobra.Command, args []string) error {
				version, dirty, err := newMigrate(".", dsn).Version()
				if err != nil {
					return err
				}
				fmt.Println("Version:", version, "Dirty:", dirty)
				return nil
			},
		},
	)
	return root
}

// MigrateUpForTesting drops everything then applies all migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate(rootDir, dsn)

	err := m.Drop()
	if err != nil {
		panic(err)
	}

	m = newMigrate(rootDir, dsn)
	err = ignoreNoChange(m.Up())
	if err != nil {
		panic(err)
	}
}
