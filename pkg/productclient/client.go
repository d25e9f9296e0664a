// Package productclient drives the vendor product form flow against the
// catalog API: load an existing product, edit its fields, optionally swap
// the image, and submit the result.
package productclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	VendorID    string   `json:"vendorId"`
}

// ProductForm mirrors the edit form state. Image holds either the
// product's stored URL (unchanged) or a data URI for a replacement.
type ProductForm struct {
	Name        string
	Description string
	Tag         string
	Image       string
}

// FormFromProduct pre-fills the form the way the edit page does.
func FormFromProduct(p Product) ProductForm {
	f := ProductForm{
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
	}
	if len(p.Tags) > 0 {
		f.Tag = p.Tags[0]
	}
	return f
}

// ReplaceImage swaps the form's image for new content, encoded as a
// base64 data URI so the server re-uploads it.
func (f *ProductForm) ReplaceImage(r io.Reader, contentType string) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("productclient: read image: %w", err)
	}
	f.Image = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw)
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client with its own cookie jar, so a Login call carries
// the session into subsequent requests.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) Login(ctx context.Context, phone, password string) error {
	form := url.Values{"phone": {phone}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	var p Product
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/"+id, nil)
	if err != nil {
		return p, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return p, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return p, apiError(resp)
	}
	return p, json.NewDecoder(resp.Body).Decode(&p)
}

func (c *Client) Create(ctx context.Context, form ProductForm) (Product, error) {
	return c.submit(ctx, http.MethodPost, c.baseURL+"/products", form, http.StatusCreated)
}

func (c *Client) Update(ctx context.Context, id string, form ProductForm) (Product, error) {
	return c.submit(ctx, http.MethodPut, c.baseURL+"/products/"+id, form, http.StatusOK)
}

func (c *Client) submit(ctx context.Context, method, endpoint string, form ProductForm, wantStatus int) (Product, error) {
	var p Product

	var body strings.Builder
	w := multipart.NewWriter(&body)
	fields := map[string]string{
		"name":        form.Name,
		"description": form.Description,
		"tag":         form.Tag,
		"image":       form.Image,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return p, fmt.Errorf("productclient: encode form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return p, fmt.Errorf("productclient: encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return p, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return p, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		return p, apiError(resp)
	}
	return p, json.NewDecoder(resp.Body).Decode(&p)
}

// APIError carries the server's status and error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("productclient: %d: %s", e.StatusCode, e.Message)
}

func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}
