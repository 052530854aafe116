package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusNoSuchEntry is the management API status for a missing object.
const statusNoSuchEntry = 612

// errorBody is the JSON error payload of the management API.
type errorBody struct {
	Error string `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var parsed errorBody
	if err := json.Unmarshal(resp.Body(), &parsed); err == nil && parsed.Error != "" {
		body = parsed.Error
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case statusNoSuchEntry, http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrObjectNotFound, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrObjectStorageRequest, resp.StatusCode(), body)
	}
}
