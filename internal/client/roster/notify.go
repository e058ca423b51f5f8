package roster

// Kind tells success notifications from failures.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "error"
	}
	return "success"
}

// Notification is one operator-visible message.
type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

// Notifier receives every outcome the core reports. Implementations must be
// safe for concurrent use; operations settle on their own goroutines.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

func success(title, msg string) Notification {
	return Notification{Kind: KindSuccess, Title: title, Message: msg}
}

func failure(title, msg string) Notification {
	return Notification{Kind: KindError, Title: title, Message: msg}
}
