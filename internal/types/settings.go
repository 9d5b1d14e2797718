package types

type JobDefaults struct {
	Project         string `yaml:"project"`
	DestinationPath string `yaml:"destination_path"`
}

type Settings struct {
	Servers      []Server    `yaml:"servers"`
	ActiveServer string      `yaml:"active_server"`
	JobDefaults  JobDefaults `yaml:"job_default_parameters"`
}
