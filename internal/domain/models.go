package domain

// Item is one selectable repository
type Item struct {
	Name string // display name, matched against the query
	Path string // identifier handed to the shell on selection
}
