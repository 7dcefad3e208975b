// Package platform is the adapter for the commerce platform's admin GraphQL
// API. The engine treats it as an opaque port: catalog snapshots in, single
// visibility mutations out, failures as plain errors.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"app/models"
)

// Client talks to the platform admin API.
type Client struct {
	Endpoint    string
	AccessToken string
	HTTP        *http.Client
}

// New builds a client for the store's admin API endpoint.
func New(endpoint, accessToken string) *Client {
	return &Client{
		Endpoint:    endpoint,
		AccessToken: accessToken,
		HTTP:        &http.Client{Timeout: 30 * time.Second},
	}
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

const catalogQuery = `
query {
  products(first: 250) {
    edges {
      node {
        id
        title
        status
        variants(first: 50) {
          edges { node { inventoryQuantity } }
        }
      }
    }
  }
}`

// QueryCatalog returns the catalog snapshot: one row per product with its
// total stock summed across variants and its current visibility status.
func (c *Client) QueryCatalog(ctx context.Context) ([]models.CatalogProduct, error) {
	var resp struct {
		Data struct {
			Products struct {
				Edges []struct {
					Node struct {
						ID       string `json:"id"`
						Title    string `json:"title"`
						Status   string `json:"status"`
						Variants struct {
							Edges []struct {
								Node struct {
									InventoryQuantity int `json:"inventoryQuantity"`
								} `json:"node"`
							} `json:"edges"`
						} `json:"variants"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"data"`
		Errors []gqlError `json:"errors"`
	}

	if err := c.do(ctx, gqlRequest{Query: catalogQuery}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("catalog query: %s", joinErrors(resp.Errors))
	}

	products := make([]models.CatalogProduct, 0, len(resp.Data.Products.Edges))
	for _, e := range resp.Data.Products.Edges {
		total := 0
		for _, v := range e.Node.Variants.Edges {
			total += v.Node.InventoryQuantity
		}
		products = append(products, models.CatalogProduct{
			ID:     e.Node.ID,
			Title:  e.Node.Title,
			Stock:  total,
			Status: e.Node.Status,
		})
	}
	return products, nil
}

const updateMutation = `
mutation productUpdate($input: ProductInput!) {
  productUpdate(input: $input) {
    product { id status }
    userErrors { field message }
  }
}`

// UpdateVisibility sets one product's status to ACTIVE or DRAFT.
func (c *Client) UpdateVisibility(ctx context.Context, id, status string) error {
	var resp struct {
		Data struct {
			ProductUpdate struct {
				UserErrors []struct {
					Message string `json:"message"`
				} `json:"userErrors"`
			} `json:"productUpdate"`
		} `json:"data"`
		Errors []gqlError `json:"errors"`
	}

	req := gqlRequest{
		Query:     updateMutation,
		Variables: map[string]interface{}{"input": map[string]interface{}{"id": id, "status": status}},
	}
	if err := c.do(ctx, req, &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return fmt.Errorf("product update: %s", joinErrors(resp.Errors))
	}
	if errs := resp.Data.ProductUpdate.UserErrors; len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("product update rejected: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func (c *Client) do(ctx context.Context, body gqlRequest, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.AccessToken)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("call platform: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("platform returned %d: %s", resp.StatusCode, string(detail))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func joinErrors(errs []gqlError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
