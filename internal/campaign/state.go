package campaign

// State is where a campaign run is.
type State int

const (
	LoggedOut State = iota
	LoggingIn
	Searching
	Iterating
	Done
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case LoggingIn:
		return "logging_in"
	case Searching:
		return "searching"
	case Iterating:
		return "iterating"
	case Done:
		return "done"
	}
	return "unknown"
}

// Stage is how far one application got.
type Stage int

const (
	Opened Stage = iota
	ApplyClicked
	FormAnalyzed
	FormFilled
	Submitted
	Failed
)

func (s Stage) String() string {
	switch s {
	case Opened:
		return "opened"
	case ApplyClicked:
		return "apply_clicked"
	case FormAnalyzed:
		return "form_analyzed"
	case FormFilled:
		return "form_filled"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	}
	return "unknown"
}
