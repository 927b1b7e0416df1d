package auth

import "context"

const (
	PathRoot   = "/"
	PathLogin  = "/login"
	PathHome   = "/home"
	PathCharts = "/charts"
)

type Route struct {
	Path         string
	RequiresAuth bool
	// Redirect makes the route an alias of another path.
	Redirect string
}

var routes = map[string]Route{
	PathRoot:   {Path: PathRoot, Redirect: PathHome},
	PathLogin:  {Path: PathLogin},
	PathHome:   {Path: PathHome, RequiresAuth: true},
	PathCharts: {Path: PathCharts, RequiresAuth: true},
}

// Resolve finds the route for path. Unknown paths land on the login screen, which
// also handles auth callbacks.
func Resolve(path string) Route {
	if r, ok := routes[path]; ok {
		return r
	}
	return Route{Path: path}
}

type Verdict int

const (
	Allow Verdict = iota
	Defer
	Redirect
)

type Decision struct {
	Verdict Verdict
	Target  string
}

// Decide is the navigation guard. While the session is loading the navigation is
// deferred, never allowed or denied.
func Decide(snapshot Snapshot, to Route) Decision {
	if to.Redirect != "" {
		return Decision{Verdict: Redirect, Target: to.Redirect}
	}
	if snapshot.Loading() {
		return Decision{Verdict: Defer}
	}
	switch {
	case to.RequiresAuth && snapshot.User == nil:
		return Decision{Verdict: Redirect, Target: PathLogin}
	case to.Path == PathLogin && snapshot.User != nil:
		return Decision{Verdict: Redirect, Target: PathHome}
	default:
		return Decision{Verdict: Allow, Target: to.Path}
	}
}

// Navigate initializes auth if needed, waits for it to settle and decides.
func (g *Guard) Navigate(ctx context.Context, path string) (Decision, error) {
	to := Resolve(path)
	if g.Snapshot().Loading() {
		g.InitAuth(ctx)
		if err := g.Await(ctx); err != nil {
			return Decision{Verdict: Defer}, err
		}
	}
	return Decide(g.Snapshot(), to), nil
}
