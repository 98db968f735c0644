package models

type Config struct {
	FancyScreen bool          `json:"fancy_screen"`
	PokeAPI     PokeAPIConfig `json:"pokeapi"`
	HTTP        HTTPConfig    `json:"http"`
}

// MaxPageSize bounds PokeAPIConfig.PageSize.
const MaxPageSize = 10000

type PokeAPIConfig struct {
	BaseURL          string `json:"base_url" validate:"required,url"`
	ImageURLTemplate string `json:"image_url_template" validate:"required,contains={id}"`
	PageSize         int    `json:"page_size" validate:"required,min=1,max=10000"`
	Limit            int    `json:"limit" validate:"required,min=1"`
	Language         string `json:"language" validate:"required"`
	TimeoutSeconds   int    `json:"timeout_seconds" validate:"min=0,max=600"`
}

type HTTPConfig struct {
	Port          int    `json:"port" validate:"required,min=1,max=65535"`
	ListeningAddr string `json:"listening_addr" validate:"required"`
	RateLimit     int    `json:"rate_limit" validate:"min=0"`
}

// DefaultConfig targets the public PokeAPI and fetches a single page of 100.
func DefaultConfig() *Config {
	return &Config{
		PokeAPI: PokeAPIConfig{
			BaseURL:          "https://pokeapi.co/api/v2",
			ImageURLTemplate: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/{id}.png",
			PageSize:         100,
			Limit:            100,
			Language:         "en",
			TimeoutSeconds:   30,
		},
		HTTP: HTTPConfig{
			Port:          8080,
			ListeningAddr: "127.0.0.1",
			RateLimit:     120,
		},
	}
}
