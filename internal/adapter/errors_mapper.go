package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewServerError(resp.StatusCode(), extractMessage(resp.Body()))
}

// extractMessage returns the "message" field of a JSON error body. Anything
// else, such as the HTML page of a proxy, is not meant for the user and
// yields "".
func extractMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return strings.TrimSpace(errResp.Message)
}
