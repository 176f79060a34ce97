package model

// Container edustaa Docker containeria
type Container struct {
	ID    string
	Name  string
	Image string
	State string
}
