package config

// File represents the structure of the stamp.yaml configuration file.
type File struct {
	Root         string          `yaml:"root"`
	Listen       string          `yaml:"listen"`
	CacheControl CacheControlDTO `yaml:"cacheControl"`
}

// CacheControlDTO holds the configurable cache-control header values.
type CacheControlDTO struct {
	// Document applies to rewritten documents served without a
	// lastModified parameter.
	Document string `yaml:"document"`
	// Stamped applies to responses requested with a lastModified
	// parameter.
	Stamped string `yaml:"stamped"`
}
