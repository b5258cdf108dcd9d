package pipeline

import (
	"errors"
	"fmt"

	"github.com/spacesedan/redlytics/internal/failure"
)

// UserMessage explains err to the person who asked for the analysis.
func UserMessage(err error, username string) string {
	if err == nil {
		return ""
	}

	var fe *failure.Error
	if !errors.As(err, &fe) {
		return fmt.Sprintf("An unknown error occurred while analyzing u/%s: %v", username, err)
	}

	switch fe.Kind {
	case failure.NotFound:
		return fmt.Sprintf("User u/%s was not found on Reddit.", username)
	case failure.Forbidden:
		return fmt.Sprintf("The profile for u/%s is private, suspended, or banned.", username)
	case failure.UpstreamUnavailable:
		if fe.Status != 0 {
			return fmt.Sprintf("The analysis service is temporarily unavailable (Error: %d). Please try again shortly.", fe.Status)
		}
		return "The analysis service is temporarily unavailable. Please try again shortly."
	case failure.MalformedData:
		return fmt.Sprintf("Failed to analyze u/%s due to malformed data from Reddit. This can be a temporary issue.", username)
	case failure.NetworkUnreachable:
		return "Network error: could not reach Reddit or any relay. Please check your connection."
	case failure.EmptyActivity:
		return fmt.Sprintf("u/%s has no posts or comments to analyze.", username)
	default:
		return fmt.Sprintf("An unknown error occurred while analyzing u/%s.", username)
	}
}
