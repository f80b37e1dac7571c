package database

import (
	"net"
	"strconv"
	"time"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/internal/model"
	"github.com/Riaraujo/testecrud/pkg/logger"
	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MySQLDSN builds the connection string of the "mysql" driver.
func MySQLDSN(cfg *config.DatabaseConfig) string {
	dsn := mysqldriver.NewConfig()
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dsn.DBName = cfg.DBName
	dsn.ParseTime = cfg.ParseTime
	dsn.Loc = time.Local
	if cfg.Timeout > 0 {
		dsn.Timeout = cfg.Timeout
	}
	if cfg.Charset != "" {
		dsn.Params = map[string]string{"charset": cfg.Charset}
	}
	return dsn.FormatDSN()
}

// InitDB opens the MySQL database used by the "mysql" driver and migrates
// the pastas, provas and questoes tables.
func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(MySQLDSN(cfg)), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Log.Info("Database connection established",
		zap.String("driver", "mysql"),
		zap.String("host", cfg.Host),
		zap.String("database", cfg.DBName),
	)

	if err := db.AutoMigrate(
		&model.Pasta{},
		&model.Prova{},
		&model.Questao{},
	); err != nil {
		return nil, err
	}

	logger.Log.Info("Database migration completed")
	return db, nil
}
