package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs, bools for feature toggles.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	AWSAccessKeyID     string // AWS access key for the DynamoDB client
	AWSSecretAccessKey string // AWS secret key for the DynamoDB client
	AWSRegion          string // AWS region hosting the table
	DynamoTable        string // name of the single DynamoDB table

	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	CSRFProtection bool   // enforce the X-CSRF-Token header on state-changing requests
	SecureCookies  bool   // secure-cookie toggle (unused by the bearer flow, kept for parity)
	BcryptCost     int    // bcrypt cost for password hashing

	EmailSender   string // sender address for notification emails (empty disables sending)
	EmailPassword string // SMTP password for the sender account
	SMTPHost      string // SMTP server host
	SMTPPort      string // SMTP server port
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first so local
// development mirrors the deployed environment.  Required variables are
// enforced by must() and missing values cause the program to exit with a
// fatal log message.
func Load() Config {
	_ = godotenv.Load() // missing .env is fine; real env vars win

	return Config{
		Env:  getenv("APP_ENV", "dev"),
		Port: getenv("APP_PORT", "8000"),

		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getenv("AWS_REGION", "us-east-2"),
		DynamoTable:        getenv("DYNAMODB_TABLE", "banjosthefoodchain"),

		JWTSecret:      must("JWT_SECRET_KEY"),
		AccessTTLMin:   intDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTTLDays: intDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7),
		CSRFProtection: boolDefault("CSRF_PROTECTION", true),
		SecureCookies:  boolDefault("SECURE_COOKIES", true),
		BcryptCost:     intDefault("BCRYPT_COST", 12),

		EmailSender:   os.Getenv("EMAIL_SENDER"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func intDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func boolDefault(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	}
	return def
}
