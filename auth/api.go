package auth

import (
	"fmt"
	"net/http"

	"github.com/sivajeyabalan/blogapi/types"
)

var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

// SetAuthHeader attaches the bearer token at send time. A token written
// while a request is already in flight doesn't change that request's
// attached header.
func SetAuthHeader(req *http.Request) error {
	mu.Lock()
	defer mu.Unlock()

	if Current == nil {
		return fmt.Errorf("error setting auth header: auth not loaded")
	}

	req.Header.Set("Authorization", "Bearer "+Current.Token)

	return nil
}
