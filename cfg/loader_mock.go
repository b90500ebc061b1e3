package cfg

type MockLoader struct{}

func NewMockLoader() (*MockLoader, error) {
	return &MockLoader{}, nil
}

func (yl *MockLoader) Load() (*Config, error) {
	return &Config{
		// App
		App: App{
			Name:    "github-users-api",
			Version: "1.0.0",
		},

		// Api
		// The default credentials are a documented weakness kept for
		// compatibility, override them with BASIC_AUTH_USER/BASIC_AUTH_PASS
		Api: Api{
			Host:          "0.0.0.0",
			Port:          8080,
			BasicAuthUser: "admin",
			BasicAuthPass: "admin123",
		},

		// GithubApi
		GithubApi: GithubApi{
			AccessToken:        "",
			ApiUrl:             "https://api.github.com/users",
			BatchSize:          100,
			MaxUsers:           3000,
			RateLimitThreshold: 10,
			PacingDelayMs:      1000,
		},

		// Snapshot
		Snapshot: Snapshot{
			RawPath:      "data/users.json",
			FilteredPath: "data/filtered_users.json",
		},

		// Filter
		Filter: Filter{
			CutoffDate: "2000-01-01",
		},
	}, nil
}
