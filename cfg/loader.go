package cfg

type Loader interface {
	Load() (*Config, error)
}
