package upm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Registry looks up package versions in an npm-style Unity registry.
type Registry struct {
	baseURL    string
	httpClient *http.Client
}

// NewRegistry returns a Registry rooted at baseURL. A nil client uses
// http.DefaultClient.
func NewRegistry(baseURL string, httpClient *http.Client) *Registry {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Registry{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type packageDocument struct {
	Name     string                     `json:"name"`
	DistTags map[string]string          `json:"dist-tags"`
	Versions map[string]json.RawMessage `json:"versions"`
}

// Latest returns the highest stable version published for name. Pre-release
// versions are considered only when no stable version exists; the registry's
// "latest" tag is the last resort when no version string parses.
func (r *Registry) Latest(ctx context.Context, name string) (string, error) {
	url := r.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "unitykit")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying registry for %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("package %s not found in registry %s", name, r.baseURL)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned status %d for %s", resp.StatusCode, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading registry response: %w", err)
	}

	var doc packageDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("parsing registry response for %s: %w", name, err)
	}

	versions := make([]string, 0, len(doc.Versions))
	for v := range doc.Versions {
		versions = append(versions, v)
	}
	if best := pickLatest(versions); best != "" {
		return best, nil
	}
	if latest := doc.DistTags["latest"]; latest != "" {
		return latest, nil
	}
	return "", fmt.Errorf("no published versions for %s", name)
}

// pickLatest returns the highest stable version, falling back to the highest
// pre-release. Unparseable entries are ignored.
func pickLatest(versions []string) string {
	var stable, pre *semver.Version
	var stableRaw, preRaw string

	for _, raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if v.Prerelease() == "" {
			if stable == nil || v.GreaterThan(stable) {
				stable, stableRaw = v, raw
			}
			continue
		}
		if pre == nil || v.GreaterThan(pre) {
			pre, preRaw = v, raw
		}
	}

	if stable != nil {
		return stableRaw
	}
	return preRaw
}

// SplitID splits "name@version" into its parts. The version is empty when
// the identifier carries none.
func SplitID(id string) (name, version string) {
	name, version, _ = strings.Cut(strings.TrimSpace(id), "@")
	return name, version
}
