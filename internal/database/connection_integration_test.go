package database_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/config"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/database"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestConnectMariaDB spins up a disposable MariaDB container and runs the
// connection and migration path against it. Gated behind INTEGRATION so the
// unit suite stays docker-free.
func TestConnectMariaDB(t *testing.T) {
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run container-backed tests")
	}

	ctx := context.Background()
	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mariadb:11",
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": "root",
				"MARIADB_DATABASE":      "finserv_test",
				"MARIADB_USER":          "finserv",
				"MARIADB_PASSWORD":      "finserv",
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB: %v", err)
		}
	}()

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		t.Fatalf("Failed to get mapped port: %v", err)
	}

	// The listening port comes up before the server accepts logins.
	dsn := fmt.Sprintf("finserv:finserv@tcp(%s:%s)/finserv_test", host, mapped.Port())
	if err := waitForMySQL(dsn, 30*time.Second); err != nil {
		t.Fatalf("MariaDB never became ready: %v", err)
	}

	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        "finserv_test",
		DBUser:            "finserv",
		DBPassword:        "finserv",
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	f := models.Franchise{ID: "fr-1", Name: "Pune Central", Active: true}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("Create: %v", err)
	}
	var got models.Franchise
	if err := db.First(&got, "id = ?", "fr-1").Error; err != nil {
		t.Fatalf("First: %v", err)
	}
	if got.Name != "Pune Central" {
		t.Errorf("Name = %q", got.Name)
	}
}

func waitForMySQL(dsn string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		conn, err := sql.Open("mysql", dsn)
		if err == nil {
			lastErr = conn.Ping()
			conn.Close()
			if lastErr == nil {
				return nil
			}
		} else {
			lastErr = err
		}
		time.Sleep(time.Second)
	}
	return lastErr
}
