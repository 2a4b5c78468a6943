package api

import (
	"context"
	"net/http"
	"net/url"
)

type diseasesResponse struct {
	Diseases []CommonDisease `json:"diseases"`
	Total    int             `json:"total"`
	Language string          `json:"language"`
}

// CommonDiseases returns the catalogue of frequent diseases, optionally
// filtered by crop type.
func (c *Client) CommonDiseases(ctx context.Context, cropType, language string) ([]CommonDisease, error) {
	query := url.Values{}
	if cropType != "" {
		query.Set("crop_type", cropType)
	}
	if language != "" {
		query.Set("language", language)
	}
	path := "/api/v1/diseases/common"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp diseasesResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, "", c.requestTimeout, &resp); err != nil {
		return nil, err
	}
	return resp.Diseases, nil
}
