package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bioorbit/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CorpusConfig locates the publication corpus.
type CorpusConfig struct {
	// Path is the CSV file holding the corpus.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// SearchConfig holds settings for keyword search over the corpus.
type SearchConfig struct {
	// MaxResults caps the number of records returned by the search command (default 10).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// Fields lists the record fields matched against the query. Fields the
	// corpus does not carry are skipped.
	Fields []string `json:"fields" yaml:"fields" mapstructure:"fields"`

	// YearFrom and YearTo bound the publication year (inclusive). Zero
	// disables the bound.
	YearFrom int `json:"year_from,omitempty" yaml:"year_from,omitempty" mapstructure:"year_from"`
	YearTo   int `json:"year_to,omitempty" yaml:"year_to,omitempty" mapstructure:"year_to"`
}

// SimilarityMode selects how paper-to-paper similarity edges are created.
type SimilarityMode string

const (
	// SimilaritySharedAuthors links papers that share at least one author.
	SimilaritySharedAuthors SimilarityMode = "authors"

	// SimilarityLexical links papers whose titles share enough tokens.
	SimilarityLexical SimilarityMode = "lexical"

	// SimilarityNone adds no paper-to-paper edges.
	SimilarityNone SimilarityMode = "none"
)

// GraphVariant names one of the graph presets: the full author/paper graph
// or the simplified paper-only graph.
type GraphVariant string

const (
	VariantInteractive GraphVariant = "interactive"
	VariantSimplified  GraphVariant = "simplified"
)

// GraphConfig holds settings for graph assembly and visual encoding.
type GraphConfig struct {
	// Variant selects the preset: interactive (default) or simplified.
	Variant GraphVariant `json:"variant" yaml:"variant" mapstructure:"variant"`

	// MaxPapers caps the selected records fed to the graph
	// (20 interactive, 15 simplified).
	MaxPapers int `json:"max_papers" yaml:"max_papers" mapstructure:"max_papers"`

	// MaxAuthors caps the authors retained per paper (default 3).
	MaxAuthors int `json:"max_authors" yaml:"max_authors" mapstructure:"max_authors"`

	// MaxNameLen truncates author display names (default 30).
	MaxNameLen int `json:"max_name_len" yaml:"max_name_len" mapstructure:"max_name_len"`

	// LabelLen truncates paper titles in node labels (default 60).
	LabelLen int `json:"label_len" yaml:"label_len" mapstructure:"label_len"`

	// Similarity selects the similarity edge policy.
	Similarity SimilarityMode `json:"similarity" yaml:"similarity" mapstructure:"similarity"`

	// MinSharedTokens is the lexical similarity threshold (default 2).
	MinSharedTokens int `json:"min_shared_tokens" yaml:"min_shared_tokens" mapstructure:"min_shared_tokens"`

	// OmitAuthors builds a paper-only graph without author nodes.
	OmitAuthors bool `json:"omit_authors" yaml:"omit_authors" mapstructure:"omit_authors"`

	// Fields lists the record fields the graph query is matched against.
	Fields []string `json:"fields" yaml:"fields" mapstructure:"fields"`
}

// LayoutAlgorithm names a layout engine algorithm.
type LayoutAlgorithm string

const (
	LayoutForceDirected LayoutAlgorithm = "force_directed"
	LayoutSpring        LayoutAlgorithm = "spring"
	LayoutIsomap        LayoutAlgorithm = "isomap"
)

// LayoutConfig holds settings for the layout engine.
type LayoutConfig struct {
	// Algorithm selects the primary layout algorithm.
	Algorithm LayoutAlgorithm `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm"`

	// Seed makes every algorithm and the fallback reproducible (default 42).
	Seed uint64 `json:"seed" yaml:"seed" mapstructure:"seed"`

	// Iterations bounds force-directed stabilization (default 200).
	Iterations int `json:"iterations" yaml:"iterations" mapstructure:"iterations"`

	// SpringIterations bounds the spring embedding (default 50).
	SpringIterations int `json:"spring_iterations" yaml:"spring_iterations" mapstructure:"spring_iterations"`

	// SpringK is the optimal node distance of the spring embedding (default 1.5).
	SpringK float64 `json:"spring_k" yaml:"spring_k" mapstructure:"spring_k"`
}

// RenderConfig holds settings for the renderer adapters.
type RenderConfig struct {
	// OutputDir receives rendered artifacts (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Width and Height size static snapshots in pixels.
	Width  int `json:"width" yaml:"width" mapstructure:"width"`
	Height int `json:"height" yaml:"height" mapstructure:"height"`
}

// SummaryConfig holds settings for the summarization collaborator.
type SummaryConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIKey authenticates against the chat completions API. Empty means
	// offline mode.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL is the OpenAI-compatible endpoint root.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Model is the chat model identifier (e.g. "llama-3.1-8b-instant").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// MaxTokens caps the completion length (default 400).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`

	// Temperature is the sampling temperature (default 0.3).
	Temperature float64 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// MaxRetries is the number of 429 retries (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// FetchConfig holds settings for abstract scraping.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// RequestsPerSecond limits outbound page fetches (default 2).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`

	// Concurrency bounds parallel fetches during enrichment (default 4).
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`
}

// CacheConfig locates the summary cache.
type CacheConfig struct {
	// Path is the SQLite database file. Empty disables caching.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Corpus   CorpusConfig  `json:"corpus" yaml:"corpus" mapstructure:"corpus"`
	Search   SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Graph    GraphConfig   `json:"graph" yaml:"graph" mapstructure:"graph"`
	Layout   LayoutConfig  `json:"layout" yaml:"layout" mapstructure:"layout"`
	Render   RenderConfig  `json:"render" yaml:"render" mapstructure:"render"`
	Summary  SummaryConfig `json:"summary" yaml:"summary" mapstructure:"summary"`
	Fetch    FetchConfig   `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Cache    CacheConfig   `json:"cache" yaml:"cache" mapstructure:"cache"`
}

// DefaultGraphConfig returns the preset for the given variant. Unknown
// variants get the interactive preset.
func DefaultGraphConfig(v GraphVariant) GraphConfig {
	if v == VariantSimplified {
		return GraphConfig{
			Variant:         VariantSimplified,
			MaxPapers:       15,
			MaxAuthors:      3,
			MaxNameLen:      30,
			LabelLen:        50,
			Similarity:      SimilarityLexical,
			MinSharedTokens: 2,
			OmitAuthors:     true,
			Fields:          []string{"title", "abstract"},
		}
	}
	return GraphConfig{
		Variant:         VariantInteractive,
		MaxPapers:       20,
		MaxAuthors:      3,
		MaxNameLen:      30,
		LabelLen:        60,
		Similarity:      SimilaritySharedAuthors,
		MinSharedTokens: 2,
		Fields:          []string{"title", "abstract", "keywords"},
	}
}

// DefaultLayoutConfig returns the reference layout parameters.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Algorithm:        LayoutForceDirected,
		Seed:             42,
		Iterations:       200,
		SpringIterations: 50,
		SpringK:          1.5,
	}
}

// DefaultPipelineConfig returns the configuration used when no config file,
// environment variable, or flag overrides a value.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		LogLevel: "info",
		Corpus:   CorpusConfig{Path: "nasa_space_biology_608.csv"},
		Search: SearchConfig{
			MaxResults: 10,
			Fields:     []string{"title", "abstract", "keywords"},
		},
		Graph:  DefaultGraphConfig(VariantInteractive),
		Layout: DefaultLayoutConfig(),
		Render: RenderConfig{OutputDir: "output", Width: 1200, Height: 800},
		Summary: SummaryConfig{
			HTTPConfig:  HTTPConfig{Timeout: 30 * time.Second, UserAgent: "bioorbit/0.1"},
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama-3.1-8b-instant",
			MaxTokens:   400,
			Temperature: 0.3,
			MaxRetries:  3,
		},
		Fetch: FetchConfig{
			HTTPConfig:        HTTPConfig{Timeout: 10 * time.Second, UserAgent: "bioorbit/0.1"},
			RequestsPerSecond: 2,
			Concurrency:       4,
		},
		Cache: CacheConfig{Path: "summary_cache.db"},
	}
}
