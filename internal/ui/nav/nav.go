package nav

type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenHome
	ScreenAdd
	ScreenEdit
	ScreenSummary
	ScreenTips
	ScreenSettings
	ScreenMotivation
	ScreenFocus
)

var screenLabels = map[Screen]string{
	ScreenLogin:      "Login",
	ScreenSignup:     "Sign up",
	ScreenHome:       "Home",
	ScreenAdd:        "Add session",
	ScreenEdit:       "Edit session",
	ScreenSummary:    "Summary",
	ScreenTips:       "Tips",
	ScreenSettings:   "Settings",
	ScreenMotivation: "Motivation",
	ScreenFocus:      "Focus timer",
}

func (s Screen) String() string {
	if label, ok := screenLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// LoggedIn reports whether the screen sits behind the login gate.
func (s Screen) LoggedIn() bool {
	return s != ScreenLogin && s != ScreenSignup
}

type EventKind int

const (
	EventLoggedIn EventKind = iota
	EventOpenSignup
	EventSignedUp
	EventBack
	EventOpenAdd
	EventOpenEdit
	EventOpenSummary
	EventOpenTips
	EventOpenSettings
	EventOpenMotivation
	EventOpenFocus
	EventSaved
	EventLogout
)

type Event struct {
	Kind      EventKind
	SessionID string
}

func Go(kind EventKind) Event {
	return Event{Kind: kind}
}

func Edit(sessionID string) Event {
	return Event{Kind: EventOpenEdit, SessionID: sessionID}
}

// State is the current screen. EditTarget is only set on ScreenEdit.
type State struct {
	Screen     Screen
	EditTarget string
}

func Initial(loggedIn bool) State {
	if loggedIn {
		return State{Screen: ScreenHome}
	}
	return State{Screen: ScreenLogin}
}

var homeTargets = map[EventKind]Screen{
	EventOpenAdd:        ScreenAdd,
	EventOpenSummary:    ScreenSummary,
	EventOpenTips:       ScreenTips,
	EventOpenSettings:   ScreenSettings,
	EventOpenMotivation: ScreenMotivation,
	EventOpenFocus:      ScreenFocus,
}

// Transition applies ev to s. Events a screen does not handle leave s as is.
func Transition(s State, ev Event) State {
	if ev.Kind == EventLogout && s.Screen.LoggedIn() {
		return State{Screen: ScreenLogin}
	}
	switch s.Screen {
	case ScreenLogin:
		switch ev.Kind {
		case EventLoggedIn:
			return State{Screen: ScreenHome}
		case EventOpenSignup:
			return State{Screen: ScreenSignup}
		}
	case ScreenSignup:
		switch ev.Kind {
		case EventSignedUp:
			return State{Screen: ScreenHome}
		case EventBack:
			return State{Screen: ScreenLogin}
		}
	case ScreenHome:
		if ev.Kind == EventOpenEdit {
			if ev.SessionID == "" {
				return State{Screen: ScreenHome}
			}
			return State{Screen: ScreenEdit, EditTarget: ev.SessionID}
		}
		if target, ok := homeTargets[ev.Kind]; ok {
			return State{Screen: target}
		}
	case ScreenAdd, ScreenEdit:
		if ev.Kind == EventSaved || ev.Kind == EventBack {
			return State{Screen: ScreenHome}
		}
	case ScreenSummary, ScreenTips, ScreenSettings, ScreenMotivation, ScreenFocus:
		if ev.Kind == EventBack {
			return State{Screen: ScreenHome}
		}
	}
	return s
}

// Resolve sends an Edit state whose target is gone back to Home.
func Resolve(s State, exists func(id string) bool) State {
	if s.Screen != ScreenEdit {
		return s
	}
	if s.EditTarget == "" || exists == nil || !exists(s.EditTarget) {
		return State{Screen: ScreenHome}
	}
	return s
}
