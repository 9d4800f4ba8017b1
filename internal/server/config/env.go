package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. A .env file,
// if present, is loaded by main via godotenv before this runs. Unset
// variables leave the current value untouched.
//
// Recognized variables:
//
//	ADDRESS, DATABASE_DSN, SECRET_KEY,
//	TOKEN_VALIDITY, VERIFICATION_CODE_TTL, SHUTDOWN_TIMEOUT (Go durations),
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	setString := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*dst = v
		}
	}
	setDuration := func(name string, dst *time.Duration) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString("ADDRESS", &config.EndpointAddr)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("SECRET_KEY", &config.SecretKey)
	setDuration("TOKEN_VALIDITY", &config.TokenValidityDuration)
	setDuration("VERIFICATION_CODE_TTL", &config.VerificationCodeTTL)
	setDuration("SHUTDOWN_TIMEOUT", &config.ShutdownTimeout)
	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
}
