package config

// Configfile represents the structure of the gitgeo.yaml configuration file.
// Pointer fields distinguish an explicit zero from an omitted key.
type Configfile struct {
	Input           string     `yaml:"input"`
	MaxContributors *int       `yaml:"max_contributors"`
	Workers         *int       `yaml:"workers"`
	OutputDir       string     `yaml:"output_dir"`
	Cache           CacheFiles `yaml:"cache"`
}

// CacheFiles locates the two cache files.
type CacheFiles struct {
	Repositories string `yaml:"repositories"`
	Contributors string `yaml:"contributors"`
}
