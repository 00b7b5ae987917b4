package session

// State is the authentication status of a [Session].
type State int

const (
	// Initializing means the token store has not been read yet.
	Initializing State = iota
	// Anonymous means no usable credentials are held.
	Anonymous
	// Authenticated means both a token and a user profile are held.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
