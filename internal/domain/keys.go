package domain

type CtxKey string

const (
	// KeyRequestID is the gin context key holding the request id
	KeyRequestID CtxKey = "RequestID"
)
