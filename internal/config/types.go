package config

// Config is the top-level guestprep configuration.
type Config struct {
	General *GeneralConfig `toml:"general" validate:"required"`
	SSH     *SSHConfig     `toml:"ssh"`
	Fetch   *FetchConfig   `toml:"fetch"`

	_absConfigFilePath string
}

// GeneralConfig holds host-side paths and the asset server settings.
type GeneralConfig struct {
	DataDir      string `toml:"data_dir" validate:"required"`
	ListenAddr   string `toml:"listen_addr" validate:"hostport_or_empty"`
	OpenFirewall bool   `toml:"open_firewall"`
}

// SSHConfig holds defaults for guest command execution and file pushes.
type SSHConfig struct {
	User           string `toml:"user"`
	PrivateKey     string `toml:"private_key"`
	ConnectTimeout int    `toml:"connect_timeout" validate:"min=0,max=3600"`
}

// FetchConfig holds install media download settings.
type FetchConfig struct {
	MirrorURL  string `toml:"mirror_url" validate:"omitempty,url"`
	MediaDir   string `toml:"media_dir"`
	Decompress bool   `toml:"decompress"`
}

// GetConfigDir returns the directory containing the loaded config file.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return dirOf(c._absConfigFilePath)
}
