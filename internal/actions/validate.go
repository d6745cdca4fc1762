package actions

// Notice is the outcome of validating a selection before it is run.
type Notice int

const (
	// NoticeNone means the selection can run as-is.
	NoticeNone Notice = iota

	// NoticeNoSelection blocks the run: nothing is checked.
	NoticeNoSelection

	// NoticeSelectionAdjusted warns that an exclusive action was combined
	// with other actions. The run still proceeds with every selected flag.
	NoticeSelectionAdjusted
)

// Blocking reports whether the notice prevents the script from running.
func (n Notice) Blocking() bool {
	return n == NoticeNoSelection
}

// Title is the short dialog heading for the notice.
func (n Notice) Title() string {
	switch n {
	case NoticeNoSelection:
		return "No selection"
	case NoticeSelectionAdjusted:
		return "Selection adjusted"
	default:
		return ""
	}
}

// Message is the dialog body for the notice.
func (n Notice) Message() string {
	switch n {
	case NoticeNoSelection:
		return "Select at least one action to run."
	case NoticeSelectionAdjusted:
		return "Revert/restore actions run alone; other selections will be ignored."
	default:
		return ""
	}
}

// Validate checks a selection before building its command.
func Validate(sel Selection) Notice {
	if !sel.Any() {
		return NoticeNoSelection
	}

	var exclusive, other bool
	for _, a := range sel.Selected() {
		if a.Exclusive {
			exclusive = true
		} else {
			other = true
		}
	}
	if exclusive && other {
		return NoticeSelectionAdjusted
	}
	return NoticeNone
}
