// Package config manages the lexicon configuration file.
//
// The file is YAML with one map per section:
//
//	version: "1.0"
//	sections:
//	  source:
//	    location: http://www.gutenberg.org/cache/epub/38700/pg38700.txt
//	    first_word: SAB
//	    last_word: SYZYGY
//	  limits:
//	    max_word: 64
//	    max_definition: 20000
//	  interface:
//	    prompt: "> "
//	    styled: false
//	    log_level: info
package config

// Config holds the typed sections of a loaded configuration.
type Config struct {
	Manager   *Manager
	Source    *SourceSection
	Limits    *LimitsSection
	Interface *InterfaceSection
}

// Load reads the configuration at path (DefaultPath when empty). Sections
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	store, err := NewFileStore(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Manager:   NewManager(store),
		Source:    NewSourceSection(),
		Limits:    NewLimitsSection(),
		Interface: NewInterfaceSection(),
	}

	for _, section := range []Section{cfg.Source, cfg.Limits, cfg.Interface} {
		if err := cfg.Manager.RegisterSection(section); err != nil {
			return nil, err
		}
	}

	if err := cfg.Manager.LoadAll(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save validates and writes every section.
func (c *Config) Save() error {
	return c.Manager.SaveAll()
}
