package config

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings for a test run. It is constructed once at
// process start and passed by reference to each scenario; nothing mutates
// it afterwards.
type Config struct {
	BaseURL          string
	APIKey           string
	TestUserEmail    string
	TestUserPassword string
}

// Load reads settings from the environment, optionally loading the named
// dotenv files first (with no arguments, godotenv looks for a local .env).
// Missing variables leave the corresponding fields empty rather than being
// reported here: an unusable value surfaces later as an HTTP failure in
// whichever scenario depends on it.
func Load(filenames ...string) *Config {
	if err := godotenv.Load(filenames...); err != nil {
		log.Printf("no dotenv file loaded: %v", err)
	}

	return &Config{
		BaseURL:          os.Getenv("BASE_URL"),
		APIKey:           os.Getenv("API_KEY"),
		TestUserEmail:    os.Getenv("TEST_USER_EMAIL"),
		TestUserPassword: os.Getenv("TEST_USER_PASSWORD"),
	}
}

// Headers returns the header set applied to every API request.
func (c *Config) Headers() http.Header {
	h := make(http.Header)
	h.Set("x-api-key", c.APIKey)
	h.Set("Content-Type", "application/json")
	return h
}
