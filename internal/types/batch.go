package types

type Server struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Batch remembers which job ids were created together so they can be
// polled later. Ids are unique within a batch; the server URL is the
// batch's partition key.
type Batch struct {
	ServerURL string `yaml:"server_url"`
	JobIDs    []int  `yaml:"job_ids"`
}
