package adopcion

// Severity is the level of a user-facing notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Notice is a transient user-facing notification, the CLI analog of the
// web client's toast messages.
type Notice struct {
	Severity Severity
	Message  string
}

// Notifier receives user-facing notices emitted by the client when a call
// fails. Implementations must not block.
type Notifier interface {
	Notify(n Notice)
}

// NopNotifier discards all notices. It is the default.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(Notice) {}

// User-facing failure messages, in the product's language.
const (
	msgNetwork        = "Error de conexión. Verificá tu internet."
	msgSessionExpired = "Sesión expirada. Por favor, ingresá de nuevo."
	msgForbidden      = "No tenés permisos para realizar esta acción."
	msgServer         = "Error en el servidor. Intentá de nuevo más tarde."
)

// noticeFor returns the user-facing message for a classified failure, and
// whether one should be shown at all. 404 is intentionally silent at this
// layer; the calling view renders its own not-found state.
func noticeFor(e *Error) (string, bool) {
	switch e.Kind {
	case KindNetwork:
		return msgNetwork, true
	case KindAuthRejected:
		return msgSessionExpired, true
	case KindForbidden:
		return msgForbidden, true
	case KindNotFound:
		return "", false
	case KindValidation:
		if e.Message != "" {
			return e.Message, true
		}
		return "", false
	case KindServer:
		return msgServer, true
	default:
		if e.Message != "" {
			return e.Message, true
		}
		return "", false
	}
}
