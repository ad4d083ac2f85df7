// Package config holds the freightdesk configuration: defaults, the
// config.toml file, FREIGHTDESK_ environment variables, and CLI flags,
// resolved through viper in that (reverse) precedence order.
package config

// Config represents the freightdesk configuration stored as config.toml.
// The TOML layout uses sections for logical grouping.
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	API         APIConfig         `toml:"api"`
	LLM         LLMConfig         `toml:"llm"`
	Embedding   EmbeddingConfig   `toml:"embedding"`
	VectorStore VectorStoreConfig `toml:"vector_store"`
	Geo         GeoConfig         `toml:"geo"`
	Kafka       KafkaConfig       `toml:"kafka"`
	Chat        ChatConfig        `toml:"chat"`
}

// StorageConfig holds quote persistence settings.
type StorageConfig struct {
	// Driver selects the quote store: "sqlite", "postgres", or "inmemory".
	Driver string `toml:"driver,omitempty"`

	SQLitePath  string `toml:"sqlite_path,omitempty"`
	PostgresDSN string `toml:"postgres_dsn,omitempty"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// LLMConfig holds completion provider settings.
type LLMConfig struct {
	Provider string `toml:"provider,omitempty"`
	Model    string `toml:"model,omitempty"`
	Target   string `toml:"target,omitempty"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	Provider   string `toml:"provider,omitempty"`
	Target     string `toml:"target,omitempty"`
	Model      string `toml:"model,omitempty"`
	Dimensions uint   `toml:"dimensions,omitempty"`
}

// VectorStoreConfig holds knowledge-base vector store settings.
type VectorStoreConfig struct {
	SQLitePath string `toml:"sqlite_path,omitempty"`
}

// GeoConfig holds geocoding and routing provider settings.
type GeoConfig struct {
	GeocodeURL string `toml:"geocode_url,omitempty"`
	RouteURL   string `toml:"route_url,omitempty"`
	UserAgent  string `toml:"user_agent,omitempty"`
}

// KafkaConfig holds quote event publishing settings.
type KafkaConfig struct {
	Enabled bool     `toml:"enabled,omitempty"`
	Brokers []string `toml:"brokers,omitempty"`
	Topic   string   `toml:"topic,omitempty"`
}

// ChatConfig holds streaming presentation settings.
type ChatConfig struct {
	// WordDelayMs is the per-word delay for the typing simulation on
	// quote replies. Zero streams each reply as a single chunk.
	WordDelayMs uint `toml:"word_delay_ms,omitempty"`
}
