package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyModelName, "gpt-4o-mini")
	viper.SetDefault(KeyMaxOutputTokens, 1024)
	viper.SetDefault(KeyMaxContextTokens, 16384)
	viper.SetDefault(KeyLLMCallTimeout, "2m")
	viper.SetDefault(KeyGitTimeout, "2m")
	viper.SetDefault(KeyLogLevel, "info")
}

func APIKey() string         { return viper.GetString(KeyAPIKey) }
func ModelName() string      { return viper.GetString(KeyModelName) }
func MaxOutputTokens() int   { return viper.GetInt(KeyMaxOutputTokens) }
func MaxContextTokens() int  { return viper.GetInt(KeyMaxContextTokens) }
func LLMCallTimeout() string { return viper.GetString(KeyLLMCallTimeout) }
func GitTimeout() string     { return viper.GetString(KeyGitTimeout) }
func GitHubToken() string    { return viper.GetString(KeyGitHubToken) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }
