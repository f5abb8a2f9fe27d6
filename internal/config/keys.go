package config

const (
	KeyAPIKey           = "openai_api_key"
	KeyModelName        = "model_name"
	KeyMaxOutputTokens  = "max_output_tokens"
	KeyMaxContextTokens = "max_context_tokens"
	KeyLLMCallTimeout   = "llm_call_timeout"
	KeyGitTimeout       = "git_timeout"
	KeyGitHubToken      = "github_token"
	KeyLogLevel         = "log_level"
)
