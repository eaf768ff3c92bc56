package shelf

// Contact is a named email address.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Subject groups contacts under a course subject.
type Subject struct {
	Name     string    `json:"name"`
	Contacts []Contact `json:"contacts"`
}

// Year groups subjects under a course year.
type Year struct {
	Name     string     `json:"name"`
	Subjects []*Subject `json:"subjects"`
}

// Subject returns the subject with the given name.
func (y *Year) Subject(name string) (*Subject, bool) {
	for _, s := range y.Subjects {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Directory is an immutable snapshot of the contact directory.
//
// Unlike the catalog, years and subjects keep the order in which they appear
// in the source snapshot and are never sorted.
type Directory struct {
	Years []*Year `json:"years"`
}

// Year returns the year with the given name.
func (d *Directory) Year(name string) (*Year, bool) {
	for _, y := range d.Years {
		if y.Name == name {
			return y, true
		}
	}
	return nil, false
}

// Subject resolves a two-segment path (year, subject).
func (d *Directory) Subject(year, subject string) (*Subject, bool) {
	y, ok := d.Year(year)
	if !ok {
		return nil, false
	}
	return y.Subject(subject)
}

// DirectoryStats summarizes the size of a directory.
type DirectoryStats struct {
	Years    int
	Subjects int
	Contacts int
}

// Stats counts years, subjects and contacts.
func (d *Directory) Stats() DirectoryStats {
	stats := DirectoryStats{Years: len(d.Years)}
	for _, y := range d.Years {
		stats.Subjects += len(y.Subjects)
		for _, s := range y.Subjects {
			stats.Contacts += len(s.Contacts)
		}
	}
	return stats
}
