package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/sivajeyabalan/blogapi/shared"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)

	displayMsg := ""
	errorParts := strings.Split(msg, ": ")

	if len(errorParts) > 1 {
		for i, part := range errorParts {
			if i == 0 {
				displayMsg += color.New(ColorHiRed, color.Bold).Sprint("🚨 " + shared.Capitalize(part))
				continue
			}

			// indent each wrapped cause on its own line
			displayMsg += "\n" + strings.Repeat("  ", i) + "→ " + shared.Capitalize(part)
		}
	} else {
		displayMsg = color.New(ColorHiRed, color.Bold).Sprint("🚨 " + shared.Capitalize(msg))
	}

	fmt.Fprintln(os.Stderr, displayMsg)
	os.Exit(1)
}

func OutputUnformattedErrorAndExit(msg string) {
	StopSpinner()
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

// HandleApiError is the exit funnel for API errors that commands don't handle
// themselves. Session expiry gets a sign-in hint instead of a bare failure.
func HandleApiError(apiErr *shared.ApiError) {
	StopSpinner()

	switch apiErr.Type {
	case shared.ApiErrorTypeExpiredToken:
		OutputSimpleError("Your session has expired")
		fmt.Println()
		PrintCmds("", "sign-in")
		os.Exit(1)
	case shared.ApiErrorTypeNetwork:
		OutputErrorAndExit("%s (check your connection and try again)", apiErr.Msg)
	default:
		OutputErrorAndExit("%s", apiErr.Msg)
	}
}
