// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dartling Authors

package jschema

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a JSON schema document and indexes its key order.
func ParseJSON(data []byte) (*Document, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode schema JSON: %w", err)
	}
	keys, err := extractKeyOrderJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract key order: %w", err)
	}
	return New(root, keys), nil
}

// ParseYAML decodes a YAML schema document and indexes its key order.
func ParseYAML(data []byte) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode schema YAML: %w", err)
	}
	var root map[string]any
	if err := node.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode schema YAML: %w", err)
	}
	return New(root, extractKeyOrderYAML(&node)), nil
}

// ParseBytes decodes data using the format implied by name's extension.
// Unknown extensions are treated as JSON.
func ParseBytes(data []byte, name string) (*Document, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// Loader loads schema documents from a filesystem or over HTTP.
type Loader struct {
	fsys   fs.FS
	client *http.Client
}

// NewLoader creates a Loader reading local paths from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, client: http.DefaultClient}
}

// LoadFile loads and decodes a schema file. The format is determined from
// the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, filePath)
}

// LoadURL fetches a schema document over HTTP. The format is determined
// from the URL path extension, falling back to the response content type.
func (l *Loader) LoadURL(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	name := url
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		name = url + ".yaml"
	}
	return ParseBytes(data, name)
}

// IsURL reports whether the input token should be fetched over HTTP.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
