package shelf

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind identifies a navigation state.
type ActionKind int

// Navigation states addressed by action payloads.
const (
	ActionBrowse ActionKind = iota + 1
	ActionSearch
	ActionDirectoryRoot
	ActionDirectoryYear
	ActionDirectorySubject
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionBrowse:
		return "browse"
	case ActionSearch:
		return "search"
	case ActionDirectoryRoot:
		return "directory_root"
	case ActionDirectoryYear:
		return "directory_year"
	case ActionDirectorySubject:
		return "directory_subject"
	}
	return "unknown"
}

// Payload prefixes.
const (
	prefixNav    = "nav"
	prefixSearch = "search"
	prefixMail   = "mail"
	mailBack     = "back"
)

// Action is a decoded payload. Which fields are meaningful depends on Kind.
type Action struct {
	Kind ActionKind

	// Browse.
	Token CatalogToken

	// SearchPage.
	Query string

	// Browse and SearchPage.
	Page int

	// DirectoryYear uses YearToken. DirectorySubject uses SubjectToken and
	// carries YearToken from the view that rendered it.
	YearToken    DirectoryToken
	SubjectToken DirectoryToken
}

// BrowseAction addresses page of the catalog folder behind token.
func BrowseAction(token CatalogToken, page int) Action {
	return Action{Kind: ActionBrowse, Token: token, Page: page}
}

// SearchAction addresses page of the results for query.
func SearchAction(query string, page int) Action {
	return Action{Kind: ActionSearch, Query: query, Page: page}
}

// DirectoryRootAction addresses the list of years.
func DirectoryRootAction() Action {
	return Action{Kind: ActionDirectoryRoot}
}

// DirectoryYearAction addresses the subjects of the year behind token.
func DirectoryYearAction(token DirectoryToken) Action {
	return Action{Kind: ActionDirectoryYear, YearToken: token}
}

// DirectorySubjectAction addresses the contacts behind subject.
func DirectorySubjectAction(year, subject DirectoryToken) Action {
	return Action{Kind: ActionDirectorySubject, YearToken: year, SubjectToken: subject}
}

// Payload encodes the action as "kind:arg1[:arg2]".
func (a Action) Payload() string {
	switch a.Kind {
	case ActionBrowse:
		return fmt.Sprintf("%s:%s:%d", prefixNav, a.Token, a.Page)
	case ActionSearch:
		return fmt.Sprintf("%s:%s:%d", prefixSearch, a.Query, a.Page)
	case ActionDirectoryRoot:
		return prefixMail + ":" + mailBack
	case ActionDirectoryYear:
		return fmt.Sprintf("%s:%s", prefixMail, a.YearToken)
	case ActionDirectorySubject:
		return fmt.Sprintf("%s:%s:%s", prefixMail, a.YearToken, a.SubjectToken)
	}
	return ""
}

// ParseAction decodes a payload produced by Action.Payload.
//
// Returns EMALFORMED if the payload does not follow the grammar and EINVALID
// if a search payload carries a blank query.
func ParseAction(payload string) (Action, error) {
	kind, rest, ok := strings.Cut(payload, ":")
	if !ok {
		return Action{}, Errorf(EMALFORMED, "payload %q has no kind", payload)
	}

	switch kind {
	case prefixNav:
		fields := strings.Split(rest, ":")
		if len(fields) != 2 || fields[0] == "" {
			return Action{}, Errorf(EMALFORMED, "nav payload %q: want nav:<token>:<page>", payload)
		}
		page, err := parsePage(fields[1])
		if err != nil {
			return Action{}, err
		}
		return BrowseAction(CatalogToken(fields[0]), page), nil

	case prefixSearch:
		// The query may itself contain colons; the page is after the last one.
		i := strings.LastIndex(rest, ":")
		if i < 0 {
			return Action{}, Errorf(EMALFORMED, "search payload %q: want search:<query>:<page>", payload)
		}
		page, err := parsePage(rest[i+1:])
		if err != nil {
			return Action{}, err
		}
		query := rest[:i]
		if strings.TrimSpace(query) == "" {
			return Action{}, Errorf(EINVALID, "empty search query")
		}
		return SearchAction(query, page), nil

	case prefixMail:
		if rest == mailBack {
			return DirectoryRootAction(), nil
		}
		fields := strings.Split(rest, ":")
		for _, f := range fields {
			if f == "" {
				return Action{}, Errorf(EMALFORMED, "mail payload %q has an empty token", payload)
			}
		}
		switch len(fields) {
		case 1:
			return DirectoryYearAction(DirectoryToken(fields[0])), nil
		case 2:
			return DirectorySubjectAction(DirectoryToken(fields[0]), DirectoryToken(fields[1])), nil
		}
		return Action{}, Errorf(EMALFORMED, "mail payload %q has too many fields", payload)
	}

	return Action{}, Errorf(EMALFORMED, "unknown payload kind %q", kind)
}

func parsePage(s string) (int, error) {
	page, err := strconv.Atoi(s)
	if err != nil || page < 0 {
		return 0, Errorf(EMALFORMED, "invalid page %q", s)
	}
	return page, nil
}
