package types

// PathSpec locates the evidence item an event was extracted from. Type names
// the access method ("os" for plain files); Path is interpreted by it.
type PathSpec struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// EventObject is a single extracted event. Timestamp is microseconds since
// the POSIX epoch. PathSpec is nil when the event has no byte location,
// in which case Offset is meaningless.
type EventObject struct {
	Timestamp int64     `json:"timestamp"`
	Offset    int64     `json:"offset"`
	PathSpec  *PathSpec `json:"pathspec,omitempty"`
	Parser    string    `json:"parser"`
	Desc      string    `json:"desc"`
}

// PreProcess carries information collected from the evidence source before
// extraction starts. Parsers receive it at construction time and may read
// whatever fields they need; an empty value is always safe to pass.
type PreProcess struct {
	Hostname string
	TimeZone string
	// Year disambiguates timestamp formats that omit it (syslog).
	// Zero means "use the current year".
	Year int
}

// Options is the run configuration forwarded to parser constructors. Its
// contents are opaque to the selection machinery.
type Options struct {
	DebugMode bool
	TimeZone  string
}
