package core

// ScreenState is the page the navigator shows. Exactly one is active, so
// the "logged in while creating an account" combination cannot exist.
type ScreenState int

const (
	StateLogin ScreenState = iota
	StateCreateAccount
	StateHome
)

func (s ScreenState) String() string {
	switch s {
	case StateCreateAccount:
		return "create-account"
	case StateHome:
		return "home"
	default:
		return "login"
	}
}

// StateFor applies the render priority to the two legacy flags: logged in
// wins, then account creation, otherwise login.
func StateFor(loggedIn, creatingAccount bool) ScreenState {
	switch {
	case loggedIn:
		return StateHome
	case creatingAccount:
		return StateCreateAccount
	default:
		return StateLogin
	}
}

// NavEvent is a page telling the navigator what the user did.
type NavEvent int

const (
	EventLogin NavEvent = iota + 1
	EventCreateAccount
	EventBack
	EventLogout
)

func (e NavEvent) String() string {
	switch e {
	case EventLogin:
		return "login"
	case EventCreateAccount:
		return "create-account"
	case EventBack:
		return "back"
	case EventLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// Navigator holds the current page. The zero value starts logged out.
type Navigator struct {
	state ScreenState
}

func (n Navigator) State() ScreenState    { return n.state }
func (n Navigator) LoggedIn() bool        { return n.state == StateHome }
func (n Navigator) CreatingAccount() bool { return n.state == StateCreateAccount }

// Apply performs the transition for ev from the current page and reports
// whether the page changed. Events that do not belong to the current page
// are ignored.
func (n *Navigator) Apply(ev NavEvent) bool {
	next, ok := transition(n.state, ev)
	if !ok || next == n.state {
		return false
	}
	n.state = next
	return true
}

func transition(from ScreenState, ev NavEvent) (ScreenState, bool) {
	switch from {
	case StateLogin:
		switch ev {
		case EventLogin:
			return StateHome, true
		case EventCreateAccount:
			return StateCreateAccount, true
		}
	case StateCreateAccount:
		if ev == EventBack {
			return StateLogin, true
		}
	case StateHome:
		if ev == EventLogout {
			return StateLogin, true
		}
	}
	return from, false
}
