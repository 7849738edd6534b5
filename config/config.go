package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
)

var Cfg model.Config

// LoadConfig fills Cfg from config.yaml and the environment. A missing
// config file is fine as long as the environment supplies the values;
// .env is preloaded when present.
func LoadConfig() (err error) {
	_ = godotenv.Load()

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Environment names kept from the original deployment.
	_ = viper.BindEnv("token", "TELEGRAM_BOT_API_KEY")
	_ = viper.BindEnv("channel_id", "TELEGRAM_CHAT_ID")
	_ = viper.BindEnv("moderator_id", "TELEGRAM_ADMIN_ID")
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&Cfg)
	return
}
