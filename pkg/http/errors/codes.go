package errors

// Messages carried in the error envelope, keyed by HTTP status.
const (
	MsgBadRequest       = "Bad Request"
	MsgUnauthorized     = "Unauthorized"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgUnprocessable    = "Un Processable Entry"
	MsgInternalError    = "Internal Server Error"
)

var messages = map[int]string{
	400: MsgBadRequest,
	401: MsgUnauthorized,
	404: MsgNotFound,
	405: MsgMethodNotAllowed,
	422: MsgUnprocessable,
	500: MsgInternalError,
}

// MessageFor returns the envelope message for status, falling back to the
// internal error text for statuses the API never emits.
func MessageFor(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return MsgInternalError
}
