package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeRows int    // Rows of the maze printed by the driver
	MazeCols int    // Columns of the maze printed by the driver
	MazeSeed *int64 // Seed for carving; nil picks one from the clock
	Serve    bool   // Run the REST API instead of printing a single maze
	HostIP   string // Host IP for the server
	RESTPort int    // Port for the REST API
	GinMode  string // Mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeRows: getEnvAsIntWithDefault("MAZE_ROWS", 4),
		MazeCols: getEnvAsIntWithDefault("MAZE_COLS", 8),
		MazeSeed: getOptionalEnvAsInt64("MAZE_SEED"),
		Serve:    getEnvAsBoolWithDefault("MAZE_SERVE", false),
		HostIP:   getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort: getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),
	}
}

// lookupEnv reports the value of key, treating an empty value as unset.
func lookupEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return "", false
	}
	return value, true
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := lookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue when unset.
// A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := lookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getOptionalEnvAsInt64(key string) *int64 {
	valueStr, exists := lookupEnv(key)
	if !exists {
		return nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return &value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := lookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
