package cfg

type (
	App struct {
		Name    string
		Version string
	}

	Api struct {
		Host          string
		Port          int
		BasicAuthUser string
		BasicAuthPass string
	}

	GithubApi struct {
		AccessToken        string
		ApiUrl             string
		BatchSize          int
		MaxUsers           int
		RateLimitThreshold int
		PacingDelayMs      int
	}

	Snapshot struct {
		RawPath      string
		FilteredPath string
	}

	Filter struct {
		CutoffDate string
	}
)

type Config struct {
	App       App
	Api       Api
	GithubApi GithubApi
	Snapshot  Snapshot
	Filter    Filter
}
