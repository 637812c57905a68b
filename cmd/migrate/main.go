package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"github.com/rtaweb/backend/internal/config"
	"github.com/rtaweb/backend/internal/logging"
	"github.com/rtaweb/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up (default)  未適用のマイグレーションを適用
  down          直近のマイグレーションを1つ戻す
  fresh         全テーブルを DROP し、全マイグレーションを順番に適用
  version       現在のスキーマバージョンを表示`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(logging.Options{Level: cfg.Logging.Level, Development: cfg.Logging.Development})

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := repository.MigrateUp(cfg.Database.URL); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
	case "down":
		runDown(cfg.Database.URL)
	case "fresh":
		runDropAll(cfg.Database.URL)
		if err := repository.MigrateUp(cfg.Database.URL); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
	case "version":
		printVersion(cfg.Database.URL)
	default:
		usage()
	}
}

func openMigrator(databaseURL string) *migrate.Migrate {
	m, err := repository.NewMigrator(databaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	return m
}

// ---------------------------------------------------------------------------
// down: 1ステップ戻す
// ---------------------------------------------------------------------------
func runDown(databaseURL string) {
	m := openMigrator(databaseURL)
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) || errors.Is(err, os.ErrNotExist) {
			slog.Info("nothing to roll back")
			return
		}
		logging.Fatal("rollback failed", "error", err)
	}
	slog.Info("rolled back one migration")
}

// ---------------------------------------------------------------------------
// 全テーブル DROP（マイグレーション履歴も消える）
// ---------------------------------------------------------------------------
func runDropAll(databaseURL string) {
	slog.Info("dropping all tables")
	m := openMigrator(databaseURL)
	// Drop 後の migrator は再利用できないので閉じる
	defer m.Close()

	if err := m.Drop(); err != nil {
		logging.Fatal("drop all failed", "error", err)
	}
	slog.Info("all tables dropped")
}

func printVersion(databaseURL string) {
	m := openMigrator(databaseURL)
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		slog.Info("no migrations applied")
		return
	}
	if err != nil {
		logging.Fatal("read version failed", "error", err)
	}
	slog.Info("schema version", "version", version, "dirty", dirty)
}
