package views

// MessageKind selects how a status message is styled
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width       int
	Height      int
	Message     string
	MessageKind MessageKind
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, kind MessageKind) {
	s.Message = msg
	s.MessageKind = kind
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageKind = MessageInfo
}
