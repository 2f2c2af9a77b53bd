package config

// File represents the structure of the .chatwrapped configuration file.
// Zero values mean "not set" and leave the current setting alone.
type File struct {
	// Name is the name shown in the brand line.
	Name string `yaml:"name,omitempty"`

	// Format is the default report format: text, json or markdown.
	Format string `yaml:"format,omitempty"`

	// Output is the default report file path.
	Output string `yaml:"output,omitempty"`

	// Pretty toggles JSON indentation.
	Pretty *bool `yaml:"pretty,omitempty"`

	// Import holds the bounds of the import pipeline.
	Import ImportSettings `yaml:"import,omitempty"`
}

// ImportSettings holds the import tuning of the configuration file.
type ImportSettings struct {
	// BatchSize is the number of files imported concurrently.
	BatchSize int `yaml:"batchSize,omitempty"`

	// MaxDepth is the deepest document level visited during extraction.
	MaxDepth *int `yaml:"maxDepth,omitempty"`

	// KeyLength is the deduplication prefix length in runes.
	KeyLength int `yaml:"keyLength,omitempty"`
}

// Apply copies the values set in the file onto cfg.
func (cf *File) Apply(cfg *Config) {
	if cf == nil || cfg == nil {
		return
	}

	if cf.Name != "" {
		cfg.Name = cf.Name
	}
	if cf.Format != "" {
		cfg.Format = cf.Format
	}
	if cf.Output != "" {
		cfg.ReportFile = cf.Output
	}
	if cf.Pretty != nil {
		cfg.PrettyPrint = *cf.Pretty
	}
	if cf.Import.BatchSize != 0 {
		cfg.BatchSize = cf.Import.BatchSize
	}
	// maxDepth: 0 is meaningful (root only), so the field is a pointer.
	if cf.Import.MaxDepth != nil {
		cfg.MaxDepth = *cf.Import.MaxDepth
	}
	if cf.Import.KeyLength != 0 {
		cfg.KeyLength = cf.Import.KeyLength
	}
}
