package nav

import (
	"fmt"

	"github.com/fwojciec/shelf"
)

const directoryTitle = "Contact directory"

// directoryRoot lists the years in snapshot order.
func (n *Navigator) directoryRoot() (*View, error) {
	v := &View{
		Kind:    shelf.ViewDirectoryRoot,
		Title:   directoryTitle,
		Text:    "Select the course year:",
		Buttons: make([]shelf.Button, 0, len(n.directory.Years)),
	}
	for _, year := range n.directory.Years {
		token := n.directoryTokens.GetOrCreate(shelf.Path{year.Name})
		v.Buttons = append(v.Buttons, shelf.Button{
			Kind:    shelf.ButtonYear,
			Label:   year.Name,
			Payload: shelf.DirectoryYearAction(token).Payload(),
		})
	}
	return v, nil
}

// directoryYear lists the subjects of the year behind token in snapshot order.
func (n *Navigator) directoryYear(token shelf.DirectoryToken) (*View, error) {
	path, ok := n.directoryTokens.Resolve(token)
	if !ok || len(path) != 1 {
		return nil, shelf.Errorf(shelf.ENOTFOUND, "Year not found.")
	}
	year, ok := n.directory.Year(path[0])
	if !ok {
		return nil, shelf.Errorf(shelf.ENOTFOUND, "Year not found.")
	}

	v := &View{
		Kind:    shelf.ViewDirectoryYear,
		Title:   year.Name,
		Text:    "Select the subject:",
		Buttons: make([]shelf.Button, 0, len(year.Subjects)+1),
	}
	for _, subject := range year.Subjects {
		subjectToken := n.directoryTokens.GetOrCreate(shelf.Path{year.Name, subject.Name})
		v.Buttons = append(v.Buttons, shelf.Button{
			Kind:    shelf.ButtonSubject,
			Label:   subject.Name,
			Payload: shelf.DirectorySubjectAction(token, subjectToken).Payload(),
		})
	}
	v.Buttons = append(v.Buttons, shelf.Button{
		Kind:    shelf.ButtonYears,
		Label:   LabelYears,
		Payload: shelf.DirectoryRootAction().Payload(),
	})
	return v, nil
}

// directorySubject lists the contacts behind token, which must address a
// (year, subject) pair.
func (n *Navigator) directorySubject(token shelf.DirectoryToken) (*View, error) {
	path, ok := n.directoryTokens.Resolve(token)
	if !ok || len(path) != 2 {
		return nil, shelf.Errorf(shelf.ENOTFOUND, "Subject not found.")
	}
	subject, ok := n.directory.Subject(path[0], path[1])
	if !ok {
		return nil, shelf.Errorf(shelf.ENOTFOUND, "Subject not found.")
	}

	yearToken := n.directoryTokens.GetOrCreate(shelf.Path{path[0]})
	return &View{
		Kind:     shelf.ViewDirectorySubject,
		Title:    fmt.Sprintf("%s → %s", path[0], path[1]),
		Contacts: subject.Contacts,
		Buttons: []shelf.Button{
			{
				Kind:    shelf.ButtonSubjects,
				Label:   LabelSubjects,
				Payload: shelf.DirectoryYearAction(yearToken).Payload(),
			},
			{
				Kind:    shelf.ButtonYears,
				Label:   LabelYears,
				Payload: shelf.DirectoryRootAction().Payload(),
			},
		},
	}, nil
}
