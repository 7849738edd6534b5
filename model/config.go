package model

// Config is the top-level structure of config.yaml.
type Config struct {
	Token       string `mapstructure:"token"`
	ChannelID   int64  `mapstructure:"channel_id"`
	ModeratorID int64  `mapstructure:"moderator_id"`
	LogLevel    string `mapstructure:"log_level"`
}

// ModeratorConfigured reports whether a trusted moderator identity is set.
// When it is not, the moderation path is disabled and intake aborts with a
// user-visible message instead of dispatching.
func (c Config) ModeratorConfigured() bool {
	return c.ModeratorID != 0
}
