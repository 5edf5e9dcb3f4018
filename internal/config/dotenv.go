package config

import (
	"errors"
	"os"
	"path/filepath"

	"gym-membership-go/pkg/logger"

	"github.com/joho/godotenv"
)

const dotenvFilename = ".env"

// loadDotEnv finds the nearest .env walking up from the working directory
// and exports its variables. Variables already present in the process are
// left untouched.
func loadDotEnv(log logger.Logger) error {
	path, err := findDotEnv(dotenvFilename)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("dotenv: no file found, using process env")
		return nil
	}
	if err != nil {
		return err
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	loaded, skipped := 0, 0
	for key, value := range values {
		if _, exists := os.LookupEnv(key); exists {
			skipped++
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
		loaded++
	}

	log.Info("dotenv: loaded", "path", path, "loaded", loaded, "skipped", skipped)
	return nil
}

func findDotEnv(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}
