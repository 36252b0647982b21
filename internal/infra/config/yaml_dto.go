package config

// yamlConfig mirrors lumen.yaml. Pointers distinguish "absent" from zero.
type yamlConfig struct {
	Lumen yamlLumen `yaml:"lumen"`
}

type yamlLumen struct {
	Network struct {
		Name       string `yaml:"name"`
		HorizonURL string `yaml:"horizon_url"`
		Passphrase string `yaml:"passphrase"`
	} `yaml:"network"`

	Submission struct {
		TimeoutSeconds *int `yaml:"timeout_seconds"`
	} `yaml:"submission"`

	Wallet struct {
		KeygenDelayMS *int `yaml:"keygen_delay_ms"`
	} `yaml:"wallet"`

	Display struct {
		RevealSecrets *bool `yaml:"reveal_secrets"`
	} `yaml:"display"`

	Receipts struct {
		Enabled *bool  `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"receipts"`
}
