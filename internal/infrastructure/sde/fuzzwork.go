// Package sde fetches static-data-export derivatives that have no ESI
// endpoint, currently the type materials table published by fuzzwork.
package sde

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"eveuniverse/internal/infrastructure/cache"
	"eveuniverse/internal/shared/config"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/logger"
)

const cacheKeyTypeMaterials = "sde:type_materials"

// Material is one bill-of-materials row of an inventory type.
type Material struct {
	MaterialTypeID int64 `json:"materialTypeID"`
	Quantity       int64 `json:"quantity"`
}

// Client downloads and caches SDE files. The type materials file is a few
// megabytes and changes only with game patches, so responses are held in
// the cache store for the configured TTL.
type Client struct {
	httpClient *http.Client
	url        string
	store      cache.Store
	ttl        time.Duration
	log        logger.Interface
}

// NewClient creates an SDE client backed by the given cache store.
func NewClient(cfg *config.SDEConfig, store cache.Store, log logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		url:        cfg.TypeMaterialsURL,
		store:      store,
		ttl:        time.Duration(cfg.CacheTTLHours) * time.Hour,
		log:        log.Named("sde"),
	}
}

// TypeMaterials returns the full type materials table keyed by type ID.
func (c *Client) TypeMaterials(ctx context.Context) (map[int64][]Material, error) {
	raw, hit, err := c.store.Get(ctx, cacheKeyTypeMaterials)
	if err != nil {
		c.log.Warnw("type materials cache read failed", "error", err)
	}
	if !hit {
		raw, err = c.download(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(ctx, cacheKeyTypeMaterials, raw, c.ttl); err != nil {
			c.log.Warnw("type materials cache write failed", "error", err)
		}
	}
	var table map[string][]Material
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, errors.NewDataIntegrityError("malformed type materials data", err.Error())
	}
	out := make(map[int64][]Material, len(table))
	for key, materials := range table {
		typeID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, errors.NewDataIntegrityError("malformed type materials key", key)
		}
		out[typeID] = materials
	}
	return out, nil
}

func (c *Client) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid type materials URL", err.Error())
	}
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportTransientError("type materials download failed", err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return nil, errors.NewTransportTransientError(
			fmt.Sprintf("type materials download failed with status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewTransportPermanentError(
			fmt.Sprintf("type materials download failed with status %d", resp.StatusCode))
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportTransientError("type materials download interrupted", err.Error())
	}
	c.log.Infow("downloaded type materials table",
		"bytes", len(raw), "duration", time.Since(start))
	return raw, nil
}
