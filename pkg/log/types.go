package log

// ZapConfig holds the logger settings read from config.yaml.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"

	// ctxKeyRequestID is the context key carrying a request or message id into log lines.
	ctxKeyRequestID ctxKey = "request_id"
)

type ctxKey string
