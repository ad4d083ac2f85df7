package config

const (
	defaultStorageDriver = "sqlite"
	defaultSQLitePath    = "freightdesk.db"

	defaultAPIListen = ":8080"

	defaultLLMProvider = "ollama"
	defaultLLMModel    = "llama3.2"
	defaultLLMTarget   = "http://localhost:11434"

	defaultEmbeddingProvider   = "ollama"
	defaultEmbeddingTarget     = "http://localhost:11434"
	defaultEmbeddingModel      = "nomic-embed-text"
	defaultEmbeddingDimensions = 768

	defaultVectorSQLitePath = "freightdesk-kb.db"

	defaultGeocodeURL = "https://nominatim.openstreetmap.org"
	defaultRouteURL   = "https://router.project-osrm.org"
	defaultUserAgent  = "freightdesk/1.0"

	defaultKafkaTopic = "freightdesk.quotes"

	defaultWordDelayMs = 30
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:     defaultStorageDriver,
			SQLitePath: defaultSQLitePath,
		},
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		LLM: LLMConfig{
			Provider: defaultLLMProvider,
			Model:    defaultLLMModel,
			Target:   defaultLLMTarget,
		},
		Embedding: EmbeddingConfig{
			Provider:   defaultEmbeddingProvider,
			Target:     defaultEmbeddingTarget,
			Model:      defaultEmbeddingModel,
			Dimensions: defaultEmbeddingDimensions,
		},
		VectorStore: VectorStoreConfig{
			SQLitePath: defaultVectorSQLitePath,
		},
		Geo: GeoConfig{
			GeocodeURL: defaultGeocodeURL,
			RouteURL:   defaultRouteURL,
			UserAgent:  defaultUserAgent,
		},
		Kafka: KafkaConfig{
			Topic: defaultKafkaTopic,
		},
		Chat: ChatConfig{
			WordDelayMs: defaultWordDelayMs,
		},
	}
}
