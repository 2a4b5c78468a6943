package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// uploadField is the multipart field name the backend reads the image
// from.
const uploadField = "file"

// DetectDisease uploads an image for analysis. cropType and language
// are optional hints; empty values are omitted from the form.
func (c *Client) DetectDisease(ctx context.Context, imagePath, cropType, language string) (*AnalysisResult, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(uploadField, filepath.Base(imagePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if cropType != "" {
		if err := writer.WriteField("crop_type", cropType); err != nil {
			return nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	var result AnalysisResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/detect-disease", &buf, writer.FormDataContentType(), c.analyzeTimeout, &result); err != nil {
		return nil, err
	}
	result.normalize()
	return &result, nil
}
