package logger

// Attribute keys shared by every package that logs
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyPlayerID    = "player_id"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)
