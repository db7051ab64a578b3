package installer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the installer photo API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a client that authenticates with the installer's bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("api error: status=%d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status=%d type=%s %s", e.StatusCode, e.Type, e.Message)
}

// GetProgress retrieves the capture session of a booking.
func (c *Client) GetProgress(ctx context.Context, bookingID uint) (*PhotoProgress, error) {
	var progress PhotoProgress
	if err := c.doRequest(ctx, http.MethodGet, c.progressURL(bookingID), nil, &progress); err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &progress, nil
}

// CapturePhoto stores one photo and returns the updated session.
func (c *Client) CapturePhoto(ctx context.Context, bookingID uint, photo CapturedPhoto) (*PhotoProgress, error) {
	body := capturePhotoRequest{
		TVIndex:   photo.TVIndex,
		PhotoType: photo.Type,
		Source:    photo.Source,
		Image:     photo.Image,
	}

	var progress PhotoProgress
	if err := c.doRequest(ctx, http.MethodPost, c.progressURL(bookingID), body, &progress); err != nil {
		return nil, fmt.Errorf("capture photo: %w", err)
	}
	return &progress, nil
}

// DeletePhoto clears one photo slot. The cursor is left where it was.
func (c *Client) DeletePhoto(ctx context.Context, bookingID uint, tvIndex int, photoType PhotoType) (*PhotoProgress, error) {
	endpoint := fmt.Sprintf("%s/%d/%s", c.progressURL(bookingID), tvIndex, url.PathEscape(string(photoType)))

	var progress PhotoProgress
	if err := c.doRequest(ctx, http.MethodDelete, endpoint, nil, &progress); err != nil {
		return nil, fmt.Errorf("delete photo: %w", err)
	}
	return &progress, nil
}

// SubmitPhotos sends the whole batch. Nothing is stored unless every TV has
// the photos its workflow stage requires.
func (c *Client) SubmitPhotos(ctx context.Context, bookingID uint, photos []SubmittedPhoto) (*Submission, error) {
	endpoint := c.baseURL + "/installer/upload-before-after-photos"
	body := submitPhotosRequest{BookingID: bookingID, Photos: photos}

	var submission Submission
	if err := c.doRequest(ctx, http.MethodPost, endpoint, body, &submission); err != nil {
		return nil, fmt.Errorf("submit photos: %w", err)
	}
	return &submission, nil
}

func (c *Client) progressURL(bookingID uint) string {
	return fmt.Sprintf("%s/installer/photo-progress/%d", c.baseURL, bookingID)
}

// doRequest performs an HTTP request and decodes the envelope's data into result.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	decodeErr := json.Unmarshal(respBody, &apiResp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		if decodeErr == nil && apiResp.Error != nil {
			apiErr.Type = apiResp.Error.Type
			apiErr.Message = apiResp.Error.Message
		}
		return apiErr
	}

	if result == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("unmarshal response: %w", decodeErr)
	}
	if !apiResp.Success {
		return fmt.Errorf("api error: %s", apiResp.Message)
	}
	if apiResp.Data == nil {
		return nil
	}

	// Re-marshal and unmarshal to convert Data to the target type
	dataBytes, err := json.Marshal(apiResp.Data)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}
	if err := json.Unmarshal(dataBytes, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}
