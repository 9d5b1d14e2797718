package types

// FileSelection is the content of a fileselection.txt sidecar: a set of
// file paths, stored relative to the folder holding the sidecar.
type FileSelection struct {
	Description   string   `yaml:"description"`
	SelectedPaths []string `yaml:"selected_paths"`

	// DataFilePath is the location of the sidecar itself. Set on load,
	// never serialized.
	DataFilePath string `yaml:"-"`
}
