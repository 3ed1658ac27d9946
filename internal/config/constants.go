package config

// Error messages
const (
	ErrMsgParseEnv          = "failed to parse environment"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgOTelNeedsEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT must be set when OTEL_ENABLED is true"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_32_generate_with_openssl"
	ExampleDBPassword = "change_this_secure_password"
)
