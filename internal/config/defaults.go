package config

// DefaultConfigFile is where the CLI looks for configuration by default.
const DefaultConfigFile = "productpage.yml"

// DefaultAssetsInclude are the glob patterns copied from assets_dir into a
// static build.
var DefaultAssetsInclude = []string{
	"**/*.{png,jpg,jpeg,gif,svg,webp,ico}",
	"**/*.{woff,woff2}",
}

// DefaultConfig returns a Config with sensible defaults. An empty
// ContentFile serves the built-in sample content.
func DefaultConfig() *Config {
	return &Config{
		Port:               8080,
		ContentFile:        "",
		DataDir:            ".productpage",
		OutputDir:          "dist",
		AssetsDir:          "public",
		AssetsInclude:      append([]string(nil), DefaultAssetsInclude...),
		AutoplayIntervalMS: 4000,
		ScrollCycleSeconds: 60,
		AllowAllOrigins:    false,
		LogLevel:           "info",
		Watch:              false,
	}
}
