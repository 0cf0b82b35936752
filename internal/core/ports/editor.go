package ports

// Editor opens a file in the user's text editor and waits for it to close.
type Editor interface {
	Open(path string) error
}
