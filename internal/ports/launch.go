package ports

// LaunchPort opens a file in the OS default editor.
type LaunchPort interface {
	Open(path string) error
}
