package shelf

// ViewKind identifies what a View renders.
type ViewKind string

// View kinds.
const (
	ViewFolder           ViewKind = "folder"
	ViewSearch           ViewKind = "search"
	ViewDirectoryRoot    ViewKind = "directory_root"
	ViewDirectoryYear    ViewKind = "directory_year"
	ViewDirectorySubject ViewKind = "directory_subject"
	ViewError            ViewKind = "error"
)

// ButtonKind identifies the role of a Button so the presentation layer can
// decorate it.
type ButtonKind string

// Button kinds.
const (
	ButtonFolder   ButtonKind = "folder"
	ButtonFile     ButtonKind = "file"
	ButtonPrevious ButtonKind = "previous"
	ButtonNext     ButtonKind = "next"
	ButtonParent   ButtonKind = "parent"
	ButtonYear     ButtonKind = "year"
	ButtonSubject  ButtonKind = "subject"
	ButtonSubjects ButtonKind = "subjects"
	ButtonYears    ButtonKind = "years"
)

// Button is a control in a rendered view. Exactly one of Payload and URL is
// set: Payload is an action payload to send back, URL is a direct link.
type Button struct {
	Kind    ButtonKind `json:"kind"`
	Label   string     `json:"label"`
	Payload string     `json:"payload,omitempty"`
	URL     string     `json:"url,omitempty"`
}

// IsNavigation reports whether the button moves between pages or levels
// rather than opening an item.
func (b Button) IsNavigation() bool {
	switch b.Kind {
	case ButtonPrevious, ButtonNext, ButtonParent, ButtonSubjects, ButtonYears:
		return true
	}
	return false
}

// View is the render descriptor handed to the presentation layer.
type View struct {
	Kind     ViewKind  `json:"kind"`
	Title    string    `json:"title"`
	Text     string    `json:"text,omitempty"`
	Buttons  []Button  `json:"buttons"`
	Contacts []Contact `json:"contacts,omitempty"`

	// Code is set to an error code on error views.
	Code string `json:"code,omitempty"`
}

// Items returns the buttons that open an item (folders, files, years,
// subjects), in order.
func (v *View) Items() []Button {
	var items []Button
	for _, b := range v.Buttons {
		if !b.IsNavigation() {
			items = append(items, b)
		}
	}
	return items
}

// Button returns the first button of the given kind.
func (v *View) Button(kind ButtonKind) (Button, bool) {
	for _, b := range v.Buttons {
		if b.Kind == kind {
			return b, true
		}
	}
	return Button{}, false
}

// ErrorView renders err as a user-visible view.
func ErrorView(err error) *View {
	code := ErrorCode(err)
	v := &View{
		Kind: ViewError,
		Text: ErrorMessage(err),
		Code: code,
	}
	switch code {
	case ENOTFOUND:
		v.Title = "Not found"
	case EINVALID, EMALFORMED:
		v.Title = "Invalid input"
	default:
		v.Title = "Something went wrong"
	}
	return v
}
