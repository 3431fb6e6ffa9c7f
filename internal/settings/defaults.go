package settings

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultLogsPath returns the platform's usual Minecraft chat log folder,
// with a trailing separator.
func DefaultLogsPath() string {
	return logsPathFor(runtime.GOOS, os.Getenv("APPDATA"), homeDir())
}

func logsPathFor(goos, appData, home string) string {
	var dir string
	switch goos {
	case "windows":
		return appData + `\.minecraft\logs\`
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "minecraft", "logs")
	default:
		dir = filepath.Join(home, ".minecraft", "logs")
	}
	return dir + string(filepath.Separator)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
