package database_test

import (
	"testing"
	"time"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/pkg/database"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSN(t *testing.T) {
	dsn := database.MySQLDSN(&config.DatabaseConfig{
		Host:      "db",
		Port:      3307,
		User:      "questoes",
		Password:  "p@ss:word",
		DBName:    "banco",
		Charset:   "utf8mb4",
		ParseTime: true,
		Timeout:   5 * time.Second,
	})

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	require.Equal(t, "questoes", parsed.User)
	require.Equal(t, "p@ss:word", parsed.Passwd)
	require.Equal(t, "db:3307", parsed.Addr)
	require.Equal(t, "banco", parsed.DBName)
	require.True(t, parsed.ParseTime)
	require.Equal(t, 5*time.Second, parsed.Timeout)
	require.Contains(t, dsn, "charset=utf8mb4")
}
