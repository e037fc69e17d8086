package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	taskentity "todo_backend/internal/feature/tasks/domain/entity"
	userentity "todo_backend/internal/feature/users/domain/entity"
)

// Config holds the database connection settings.
type Config struct {
	// Driver selects the SQL dialect: "mysql" (default) or "postgres".
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName is the Cloud SQL instance connection name. When set,
	// the MySQL DSN uses the unix socket path instead of TCP.
	InstanceName string
}

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:       os.Getenv("DB_DRIVER"),
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN assembles the driver-specific DSN. For MySQL the Cloud SQL unix
// socket takes precedence over Host/Port.
func BuildDSN(cfg Config) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Opener opens a gorm.DB for the given DSN. It exists so ConnectWithRetry
// can be tested without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps trying to open the database until the timeout
// elapses. Container orchestration may start the API before the database
// accepts connections.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to the configured database and, when RUN_MIGRATIONS=true,
// migrates the schema. It terminates the process on failure.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()
	dsn := BuildDSN(cfg)

	opener := func(dsn string) (*gorm.DB, error) {
		if cfg.Driver == "postgres" {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	}

	db, err := ConnectWithRetry(dsn, 60*time.Second, opener)
	if err != nil {
		log.Fatal(err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Task）
		if err := db.AutoMigrate(
			&userentity.User{},
			&taskentity.Task{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
