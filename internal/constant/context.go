package constant

const (
	ContextKeyRequestID  = "requestId"
	ContextKeyTranslator = "T"
)

const RequestIDHeader = "X-Mergington-Request-ID"
