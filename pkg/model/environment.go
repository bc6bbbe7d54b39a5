package model

import (
	"os"
	"runtime"
)

// Environment carries the ambient process state the installer needs, passed
// explicitly so tests can substitute arbitrary environments without
// process-global mutation.
type Environment struct {
	GOOS    string
	HomeDir string
	WorkDir string
	Vars    map[string]string
}

// Getenv looks up an environment variable, returning "" when absent.
func (e Environment) Getenv(key string) string {
	return e.Vars[key]
}

// SystemEnvironment captures the real process environment.
func SystemEnvironment() Environment {
	vars := make(map[string]string)
	for _, key := range []string{"ELM_HOME", "APPDATA", "HOME"} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}
	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()
	return Environment{
		GOOS:    runtime.GOOS,
		HomeDir: home,
		WorkDir: wd,
		Vars:    vars,
	}
}
