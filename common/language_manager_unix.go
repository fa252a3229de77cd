//go:build !windows

// common/language_manager_unix.go

package common

import (
	"os"
	"strings"
)

// getSystemLanguage reads the locale from the environment, LC_ALL > LC_MESSAGES > LANG.
func getSystemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if locale := os.Getenv(env); locale != "" && locale != "C" && locale != "POSIX" {
			return strings.Split(strings.ToLower(locale), "_")[0]
		}
	}
	return ""
}
