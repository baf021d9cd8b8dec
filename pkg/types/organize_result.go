package types

// OrganizeResult holds the outcome of an organization attempt for a single file
type OrganizeResult struct {
	SourcePath      string `json:"source_path"`
	DestinationPath string `json:"destination_path"`
	Size            int64  `json:"size"`
	Moved           bool   `json:"moved"`
	Error           error  `json:"error,omitempty"`
}

// OrganizeSummary describes one organizing pass over a base directory for
// a single extension.
type OrganizeSummary struct {
	ID        string           `json:"id"`
	Extension string           `json:"extension"`
	Folder    string           `json:"folder"`
	DryRun    bool             `json:"dry_run"`
	Results   []OrganizeResult `json:"results"`
	// Error is set when the pass could not run at all, e.g. the base
	// directory was unreadable or the destination folder could not be made.
	Error error `json:"-"`
}

// Matched is the number of files that matched the extension.
func (s OrganizeSummary) Matched() int {
	return len(s.Results)
}

// Moved is the number of files actually relocated.
func (s OrganizeSummary) Moved() int {
	n := 0
	for _, r := range s.Results {
		if r.Moved {
			n++
		}
	}
	return n
}

// Failed is the number of files whose move returned an error.
func (s OrganizeSummary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Error != nil {
			n++
		}
	}
	return n
}

// MovedBytes is the total size of the relocated files.
func (s OrganizeSummary) MovedBytes() int64 {
	var total int64
	for _, r := range s.Results {
		if r.Moved {
			total += r.Size
		}
	}
	return total
}
