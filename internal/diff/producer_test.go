package diff

import "testing"

func TestNewProducerRequiresForkURL(t *testing.T) {
	if _, err := NewProducer(Config{ForkBranch: "main"}); err == nil {
		t.Fatalf("expected error for missing fork url")
	}
}

func TestNewProducerRequiresForkBranch(t *testing.T) {
	if _, err := NewProducer(Config{ForkURL: "https://github.com/user/repo.git"}); err == nil {
		t.Fatalf("expected error for missing fork branch")
	}
}

func TestEstimateTokensFallback(t *testing.T) {
	oldEstimate := estimateTokensFunc
	estimateTokensFunc = func(text string) int { return len(text) / approxCharsPerToken }
	defer func() { estimateTokensFunc = oldEstimate }()

	if got := EstimateTokens("12345678"); got != 2 {
		t.Fatalf("expected 2 tokens, got %d", got)
	}
}
