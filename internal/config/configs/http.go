package configs

// HTTP defines configuration for the proxy server. StaticDir is served at
// the root path so the browser frontend and the API share one origin.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 3000.
	Port uint16 `env:"PORT" envDefault:"3000"`
	// StaticDir holds the frontend assets. An empty value disables static
	// file serving.
	StaticDir string `env:"STATIC_DIR" envDefault:"public"`
	// AllowedOrigins lists CORS origins. "*" allows any origin.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}
