package user

import (
	"os"
	"os/user"
)

// Identity returns the name stage changes are attributed to.
// A non-empty configured override wins; otherwise it falls back
// through the OS user, the USER environment variable, and finally
// "unknown" so the value is never empty.
func Identity(override string) string {
	if override != "" {
		return override
	}

	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
