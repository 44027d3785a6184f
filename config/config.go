package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Scrape ScrapeConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type ScrapeConfig struct {
	// BaseURL is a printf template with one %d verb for the page number.
	BaseURL string
	Pages   int
	Output  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	pages := viper.GetInt("SCRAPE_PAGES")
	if pages < 1 {
		pages = 10
	}

	output := viper.GetString("SCRAPE_OUTPUT")
	if output == "" {
		output = "doctors.json"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Scrape: ScrapeConfig{
			BaseURL: viper.GetString("SCRAPE_BASE_URL"),
			Pages:   pages,
			Output:  output,
		},
	}

	return config, nil
}
