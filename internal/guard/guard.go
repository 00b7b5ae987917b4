// Package guard decides what the client shows for a requested path given
// the session state. Decisions are computed on every navigation and never
// cached.
package guard

import "github.com/MKhiriev/go-fin-tracker/internal/session"

// Path is a navigation destination of the client.
type Path string

const (
	PathLogin        Path = "/login"
	PathRegister     Path = "/register"
	PathHome         Path = "/"
	PathTransactions Path = "/transactions"
	PathCategories   Path = "/categories"
	PathAccounts     Path = "/accounts"
	PathDashboard    Path = "/dashboard"
)

var publicPaths = map[Path]struct{}{
	PathLogin:    {},
	PathRegister: {},
}

var protectedPaths = map[Path]struct{}{
	PathHome:         {},
	PathTransactions: {},
	PathCategories:   {},
	PathAccounts:     {},
	PathDashboard:    {},
}

// IsPublic reports whether p is reachable without signing in.
func IsPublic(p Path) bool {
	_, ok := publicPaths[p]
	return ok
}

// IsProtected reports whether p is a known path that needs a signed-in
// user.
func IsProtected(p Path) bool {
	_, ok := protectedPaths[p]
	return ok
}

// Action is what the router does with a navigation.
type Action int

const (
	// Placeholder shows the loading screen and does not navigate.
	Placeholder Action = iota
	// Redirect navigates to Decision.Target instead of the requested path.
	Redirect
	// Render shows the requested path.
	Render
)

func (a Action) String() string {
	switch a {
	case Placeholder:
		return "placeholder"
	case Redirect:
		return "redirect"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Decision is the outcome of [Evaluate].
type Decision struct {
	Action Action
	// Target is the path to show. Empty for Placeholder.
	Target Path
	// From is the originally requested path, set on Redirect.
	From Path
}

// Evaluate decides what to show for requested under state.
//
// While the session is initializing nothing is shown but the placeholder.
// An anonymous user asking for anything but a public path is sent to the
// login screen with the requested path remembered. Everything else renders.
func Evaluate(state session.State, requested Path) Decision {
	switch {
	case state == session.Initializing:
		return Decision{Action: Placeholder}
	case IsPublic(requested):
		return Decision{Action: Render, Target: requested}
	case state == session.Anonymous:
		return Decision{Action: Redirect, Target: PathLogin, From: requested}
	default:
		return Decision{Action: Render, Target: requested}
	}
}

// ReturnPath is where to go after a successful login that was started by a
// redirect from from.
func ReturnPath(from Path) Path {
	if IsProtected(from) {
		return from
	}
	return PathHome
}
