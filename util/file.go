package util

import (
	"os"
	"path/filepath"
)

func PathExists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	return !os.IsNotExist(err)
}

func MakePath(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

// AppDataDir returns the per user data directory for the application,
// falling back to the bare name when the home directory cannot be
// resolved.
func AppDataDir(dirName string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}
