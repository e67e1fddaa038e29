package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".ring-video-downloader" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ring-video-downloader")
	}

	// RING_REFRESH_TOKEN and friends override the file.
	viper.SetEnvPrefix("RING")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// Config loaded successfully
	}
}

// SaveRefreshToken updates the config file with the rotated refresh
// token. The service may invalidate the previous token on rotation, so
// this must be called after every successful authentication.
func SaveRefreshToken(token string) error {
	viper.Set("refresh_token", token)
	return writeConfig()
}

// HardwareID returns the persisted per-install hardware id, generating
// and saving one on first use. The oauth endpoint ties refresh tokens
// to this id, so it has to stay stable between runs.
func HardwareID() (string, error) {
	if id := viper.GetString("hardware_id"); id != "" {
		return id, nil
	}

	id := uuid.NewString()
	viper.Set("hardware_id", id)
	if err := writeConfig(); err != nil {
		return "", err
	}
	return id, nil
}

func writeConfig() error {
	// Ensure the file exists before writing
	if err := viper.WriteConfig(); err != nil {
		// If file doesn't exist, create it
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		// If it exists but failed to write, try writing to default path
		home, _ := os.UserHomeDir()
		path := filepath.Join(home, ".ring-video-downloader.yaml")
		return viper.WriteConfigAs(path)
	}
	return nil
}
