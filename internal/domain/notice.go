package domain

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

func (l NoticeLevel) String() string {
	switch l {
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is an alert or question shown to the user. Title and Key are message
// catalog keys; Args fill the placeholders of Key.
type Notice struct {
	Level NoticeLevel
	Title string
	Key   string
	Args  []any
}
