package config

// GetDefaultConfigTemplate returns a fully commented config template that
// documents every available option.
func GetDefaultConfigTemplate() string {
	return `# scanpda configuration
# Priority: environment (SCANPDA_*) > .scanpda/config.yml > user config > defaults

# Alphabet settings
alphabet_file: ""       # YAML alphabet definition (empty = built-in 12-lead ECG alphabet)

# Batch settings
max_parallel: 4         # Concurrent trace evaluations in 'scanpda batch' (1-64)

# Output settings
color: auto             # Colored output: auto | always | never
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// alphabet_file: empty selects the built-in 12-lead ECG alphabet.
		"alphabet_file": "",
		// max_parallel: concurrency limit for batch dataset evaluation.
		"max_parallel": 4,
		// color: auto enables colors only on interactive terminals.
		"color": "auto",
	}
}
