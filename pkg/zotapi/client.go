package zotapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/bluele/gcache"
	"github.com/je4/zotdata/pkg/zotero"
	"github.com/op/go-logging"
	"gopkg.in/resty.v1"
)

// DefaultEndpoint is the public Zotero web API.
const DefaultEndpoint = "https://api.zotero.org"

const ErrNotFound = errors.Sentinel("not found")

// ItemTypeInfo is one entry of /itemTypes.
type ItemTypeInfo struct {
	ItemType  string `json:"itemType"`
	Localized string `json:"localized"`
}

// FieldInfo is one entry of /itemTypeFields.
type FieldInfo struct {
	Field     string `json:"field"`
	Localized string `json:"localized"`
}

// CreatorTypeInfo is one entry of /itemTypeCreatorTypes.
type CreatorTypeInfo struct {
	CreatorType string `json:"creatorType"`
	Localized   string `json:"localized"`
}

type cacheKey struct {
	endpoint string
	itemType string
}

// Client reads the schema endpoints of the Zotero API. Schema responses are cached.
type Client struct {
	client     *resty.Client
	logger     *logging.Logger
	schema     gcache.Cache
	maxRetries int
	sleep      func(time.Duration)
}

func NewClient(endpoint, apiKey string, cacheExpiration time.Duration, logger *logging.Logger) *Client {
	c := &Client{
		logger:     logger,
		maxRetries: 5,
		sleep:      time.Sleep,
	}
	c.client = resty.New()
	c.client.SetHostURL(strings.TrimRight(endpoint, "/"))
	c.client.SetHeader("Zotero-API-Version", "3")
	if apiKey != "" {
		c.client.SetAuthToken(apiKey)
	}
	c.client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(3))
	c.schema = gcache.New(200).
		LRU().
		Expiration(cacheExpiration).
		LoaderFunc(func(key interface{}) (interface{}, error) {
			k := key.(cacheKey)
			query := map[string]string{}
			if k.itemType != "" {
				query["itemType"] = k.itemType
			}
			return c.get(k.endpoint, query)
		}).
		Build()
	return c
}

/*
The API may answer with Retry-After (429, 503) or Backoff (any response).
Both carry the number of seconds to wait.
*/
func headerSeconds(header http.Header, name string) int64 {
	str := header.Get(name)
	if str == "" {
		return 0
	}
	secs, err := strconv.ParseInt(str, 10, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}

// CheckRetry sleeps for Retry-After and reports whether the request has to be repeated.
func (c *Client) CheckRetry(header http.Header) bool {
	retryAfter := headerSeconds(header, "Retry-After")
	if retryAfter > 0 {
		c.logger.Infof("Sleeping %v seconds (RetryAfter)", retryAfter)
		c.sleep(time.Duration(retryAfter) * time.Second)
	}
	return retryAfter > 0
}

func (c *Client) CheckBackoff(header http.Header) bool {
	backoff := headerSeconds(header, "Backoff")
	if backoff > 0 {
		c.logger.Infof("Sleeping %v seconds (Backoff)", backoff)
		c.sleep(time.Duration(backoff) * time.Second)
	}
	return backoff > 0
}

func (c *Client) get(endpoint string, query map[string]string) ([]byte, error) {
	c.logger.Debugf("rest call: %s %v", endpoint, query)
	var resp *resty.Response
	var err error
	for attempt := 0; ; attempt++ {
		resp, err = c.client.R().
			SetHeader("Accept", "application/json").
			SetQueryParams(query).
			Get(endpoint)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot execute rest call to %s", endpoint)
		}
		if !c.CheckRetry(resp.Header()) {
			break
		}
		if attempt >= c.maxRetries {
			return nil, errors.Errorf("%s: giving up after %v retries", endpoint, attempt+1)
		}
	}
	c.CheckBackoff(resp.Header())
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, errors.WithDetails(errors.Wrapf(ErrNotFound, "cannot get %s", endpoint), "query", query)
	case resp.StatusCode() != http.StatusOK:
		return nil, errors.WithDetails(
			errors.Errorf("cannot get %s: %s", endpoint, resp.Status()),
			"query", query, "body", string(resp.Body()))
	}
	return resp.Body(), nil
}

func (c *Client) cached(endpoint, itemType string, result interface{}) error {
	tmp, err := c.schema.Get(cacheKey{endpoint: endpoint, itemType: itemType})
	if err != nil {
		return err
	}
	body, ok := tmp.([]byte)
	if !ok {
		return errors.Errorf("invalid type %T in cache", tmp)
	}
	if err := json.Unmarshal(body, result); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %s", string(body))
	}
	return nil
}

func (c *Client) ItemTypes() ([]ItemTypeInfo, error) {
	result := []ItemTypeInfo{}
	if err := c.cached("/itemTypes", "", &result); err != nil {
		return nil, errors.Wrap(err, "cannot get item types")
	}
	return result, nil
}

func (c *Client) ItemTypeFields(itemType string) ([]FieldInfo, error) {
	result := []FieldInfo{}
	if err := c.cached("/itemTypeFields", itemType, &result); err != nil {
		return nil, errors.Wrapf(err, "cannot get fields of %s", itemType)
	}
	return result, nil
}

func (c *Client) ItemTypeCreatorTypes(itemType string) ([]CreatorTypeInfo, error) {
	result := []CreatorTypeInfo{}
	if err := c.cached("/itemTypeCreatorTypes", itemType, &result); err != nil {
		return nil, errors.Wrapf(err, "cannot get creator types of %s", itemType)
	}
	return result, nil
}

// Template returns the empty data object the API suggests for new items of itemType.
func (c *Client) Template(itemType string) ([]byte, error) {
	body, err := c.get("/items/new", map[string]string{"itemType": itemType})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get template of %s", itemType)
	}
	return body, nil
}

// Item returns the raw envelope of one item. library is "users/<id>" or "groups/<id>".
func (c *Client) Item(library, key string) ([]byte, error) {
	if !zotero.ValidKey(key) {
		return nil, errors.Errorf("invalid item key %q", key)
	}
	endpoint := fmt.Sprintf("/%s/items/%s", strings.Trim(library, "/"), key)
	body, err := c.get(endpoint, map[string]string{"format": "json"})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get item %s", key)
	}
	return body, nil
}
