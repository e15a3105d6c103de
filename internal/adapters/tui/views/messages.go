package views

// Messages for view switching
type SwitchToBrowserMsg struct{}

type SwitchToLoadMsg struct{}

type SwitchToReportMsg struct{}

type SwitchToHelpMsg struct{}

// LoadRequestMsg asks the app to load FileName into a fresh catalog
type LoadRequestMsg struct {
	FileName     string
	DroppedComma bool
}

// OpenEditorMsg asks the app to open Path in $EDITOR and reload it afterwards
type OpenEditorMsg struct {
	Path string
}
