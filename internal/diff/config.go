package diff

import (
	"time"

	"github.com/go-logr/logr"
)

const (
	DefaultUpstreamURL    = "https://github.com/HumanSignal/label-studio"
	DefaultUpstreamBranch = "develop"
	DefaultOutputFile     = "diff.txt"
)

type Config struct {
	ForkURL        string
	ForkBranch     string
	UpstreamURL    string
	UpstreamBranch string
	Filters        []string
	ViaAPI         bool
	GitHubToken    string
	GitTimeout     time.Duration
	Logger         logr.Logger
}
