package viewer

// Tab is one report file shown in the viewer
type Tab struct {
	Name    string
	Content string
}

// reportsLoadedMsg is sent when the report files have been read
type reportsLoadedMsg struct {
	tabs []Tab
	err  error
}

// refreshMsg triggers a reload of the report files
type refreshMsg struct{}
