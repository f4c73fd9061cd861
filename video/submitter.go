package video

// Submitter is the uploader identity carried on chunk record headers and
// passed through to the repo service unchanged.
type Submitter struct {
	UserID      string
	Title       string
	Description string
}

// Merge fills in fields that are still blank from other. Fields already
// present are never overwritten; the first record to carry a value wins.
func (s *Submitter) Merge(other Submitter) {
	if s.UserID == "" {
		s.UserID = other.UserID
	}
	if s.Title == "" {
		s.Title = other.Title
	}
	if s.Description == "" {
		s.Description = other.Description
	}
}

// WithDefaults returns a copy with the pipeline's fallback identity applied.
func (s Submitter) WithDefaults() Submitter {
	if s.UserID == "" {
		s.UserID = "unknown"
	}
	if s.Title == "" {
		s.Title = "Untitled"
	}
	return s
}
