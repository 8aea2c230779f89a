package log

// ZapConfig configures the zap backend.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

const (
	ModeProduction = "production"
	EncodingJSON   = "json"
)

type ctxKey string

// RequestIDKey is the context key the HTTP middleware stores the request ID under.
const RequestIDKey ctxKey = "request_id"
