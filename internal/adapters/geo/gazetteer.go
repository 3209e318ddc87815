package geo

type gazetteer struct {
	Countries []countryEntry    `yaml:"countries"`
	Regions   []regionEntry     `yaml:"regions"`
	Cities    map[string]string `yaml:"cities"`
}

type countryEntry struct {
	Name    string   `yaml:"name"`
	ISO     string   `yaml:"iso"`
	Codes   []string `yaml:"codes"`
	Aliases []string `yaml:"aliases"`
}

type regionEntry struct {
	Name    string `yaml:"name"`
	Code    string `yaml:"code"`
	Country string `yaml:"country"`
}
