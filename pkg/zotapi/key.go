package zotapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"emperror.dev/errors"
)

type AccessElements struct {
	Library bool `json:"library,omitempty"`
	Files   bool `json:"files,omitempty"`
	Notes   bool `json:"notes,omitempty"`
	Write   bool `json:"write,omitempty"`
}

// Access is keyed by group id; "all" covers every group of the user.
type Access struct {
	User   AccessElements            `json:"user,omitempty"`
	Groups map[string]AccessElements `json:"groups,omitempty"`
}

type ApiKey struct {
	UserId   int64  `json:"userId"`
	Username string `json:"username"`
	Access   Access `json:"access"`
}

// CanRead reports whether the key may read the items of library ("users/<id>" or "groups/<id>").
func (k *ApiKey) CanRead(library string) bool {
	kind, id, found := strings.Cut(strings.Trim(library, "/"), "/")
	if !found {
		return false
	}
	switch kind {
	case "users":
		return id == strconv.FormatInt(k.UserId, 10) && k.Access.User.Library
	case "groups":
		if elem, ok := k.Access.Groups[id]; ok {
			return elem.Library
		}
		return k.Access.Groups["all"].Library
	}
	return false
}

// CurrentKey returns the permissions of the configured api key.
func (c *Client) CurrentKey() (*ApiKey, error) {
	body, err := c.get("/keys/current", nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get current key")
	}
	key := &ApiKey{}
	if err := json.Unmarshal(body, key); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal %s", string(body))
	}
	return key, nil
}
