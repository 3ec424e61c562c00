package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads the first existing file among paths into the process
// environment. Variables already set are not overwritten. It returns the file
// that was loaded, or "" when none exist.
func LoadEnvFiles(paths ...string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", err
		}
		if err := godotenv.Load(p); err != nil {
			return "", err
		}
		return p, nil
	}
	return "", nil
}
