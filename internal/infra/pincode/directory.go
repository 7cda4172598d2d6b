// Package pincode resolves postal pincodes through the public postal
// directory API.
package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ayurfresh/config"
	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.postalpincode.in"

// httpDirectory is a concrete implementation of the PincodeDirectory
// interface over the postalpincode.in lookup API.
type httpDirectory struct {
	client  *http.Client
	baseURL string
}

// lookupResponse mirrors the API's envelope: a one-element array holding
// a status and the post-office list.
type lookupResponse []struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name           string `json:"Name"`
		BranchType     string `json:"BranchType"`
		DeliveryStatus string `json:"DeliveryStatus"`
		District       string `json:"District"`
		State          string `json:"State"`
		Country        string `json:"Country"`
		Block          string `json:"Block"`
		Region         string `json:"Region"`
	} `json:"PostOffice"`
}

// NewHTTPDirectory is the constructor for httpDirectory.
func NewHTTPDirectory(cfg *config.Config) service.PincodeDirectory {
	baseURL := defaultBaseURL
	timeout := 10 * time.Second
	if cfg.PostalDirectory != nil {
		if cfg.PostalDirectory.BaseURL != "" {
			baseURL = cfg.PostalDirectory.BaseURL
		}
		if cfg.PostalDirectory.Timeout > 0 {
			timeout = cfg.PostalDirectory.Timeout
		}
	}

	return &httpDirectory{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Lookup returns the post-office areas for a pincode. An unknown pincode
// yields an empty slice, not an error.
func (d *httpDirectory) Lookup(ctx context.Context, pincode string) ([]entity.PincodeArea, error) {
	endpoint := fmt.Sprintf("%s/pincode/%s", d.baseURL, pincode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build pincode lookup request")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "pincode lookup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("pincode directory returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode pincode lookup response")
	}

	if len(body) == 0 || !strings.EqualFold(body[0].Status, "Success") {
		return []entity.PincodeArea{}, nil
	}

	areas := make([]entity.PincodeArea, 0, len(body[0].PostOffice))
	for _, po := range body[0].PostOffice {
		areas = append(areas, entity.PincodeArea{
			Name:           po.Name,
			Type:           po.BranchType,
			DeliveryStatus: po.DeliveryStatus,
			District:       po.District,
			State:          po.State,
			Country:        po.Country,
			Block:          po.Block,
			Region:         po.Region,
		})
	}

	return areas, nil
}
