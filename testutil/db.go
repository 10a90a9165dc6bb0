// Package testutil starts a throwaway in-memory MySQL server so repository
// and service tests run against real SQL without an external database.
package testutil

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"
	"github.com/dolthub/vitess/go/mysql"

	"s2inventory/config"
	"s2inventory/models"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const baseTest = "s2inventory_test"

func freePort(t *testing.T) int {
	t.Helper()
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

// OpenTestDB boots an in-memory MySQL server, connects GORM to it, migrates
// the inventory schema and points config.DB at the connection so repository
// constructors pick it up. Everything is torn down with the test.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	port := freePort(t)

	memDB := memory.NewDatabase(baseTest)
	provider := memory.NewDBProvider(memDB)
	engine := sqle.NewDefault(provider)

	srvConfig := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}
	sessionBuilder := func(ctx context.Context, c *mysql.Conn, addr string) (sql.Session, error) {
		base := sql.NewBaseSessionWithClientServer(addr, sql.Client{Address: c.RemoteAddr().String(), User: c.User, Capabilities: c.Capabilities}, c.ConnectionID)
		return memory.NewSession(base, provider), nil
	}
	s, err := server.NewServer(srvConfig, engine, sessionBuilder, nil)
	if err != nil {
		t.Fatalf("create server: %v", err)
	}
	go func() {
		_ = s.Start()
	}()
	t.Cleanup(func() {
		_ = s.Close()
	})

	// Poll server readiness, the listener comes up asynchronously
	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 100*time.Millisecond)
		if err == nil {
			conn.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("test mysql server did not start: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	dsn := fmt.Sprintf("root:@tcp(localhost:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", port, baseTest)
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("gorm connect: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Localisation{},
		&models.DomaineMetier{},
		&models.FonctionMetier{},
		&models.ContratMaintenance{},
		&models.SystemeIndustriel{},
		&models.Interconnexion{},
		&models.MaterielOrdinateur{},
		&models.MaterielEffecteur{},
		&models.LicenceLogiciel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ancien := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = ancien
	})
	return db
}
