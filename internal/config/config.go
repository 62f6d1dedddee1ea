package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidEnvVar  error = errors.New("invalid environment variable")
)

const (
	apiPortEnvKey    = "API_PORT"
	dbConnEnvKey     = "DB_CONNECTION_URL"
	dbDriverEnvKey   = "DB_DRIVER"
	bcryptCostEnvKey = "BCRYPT_COST"
	logLevelEnvKey   = "LOG_LEVEL"

	defaultDBDriver = "postgres"
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	BcryptCost      int
	LogLevel        zapcore.Level
}

// NewApp reads the application settings from the environment. Values from a
// .env file in the working directory are loaded first, without overriding
// variables that are already set.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	dbDriver := defaultDBDriver
	if v, ok := os.LookupEnv(dbDriverEnvKey); ok && v != "" {
		dbDriver = v
	}

	cost := bcrypt.DefaultCost
	if v, ok := os.LookupEnv(bcryptCostEnvKey); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < bcrypt.MinCost || parsed > bcrypt.MaxCost {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, bcryptCostEnvKey, v)
		}
		cost = parsed
	}

	level := zapcore.InfoLevel
	if v, ok := os.LookupEnv(logLevelEnvKey); ok && v != "" {
		parsed, err := zapcore.ParseLevel(v)
		if err != nil {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, logLevelEnvKey, v)
		}
		level = parsed
	}

	return App{
		Port:            port,
		DBDriver:        dbDriver,
		DBConnectionURL: dbConn,
		BcryptCost:      cost,
		LogLevel:        level,
	}, nil
}
