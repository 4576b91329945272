package zotapi

import (
	"sort"

	"emperror.dev/errors"
	"github.com/je4/zotdata/pkg/zotero"
)

// structural members are part of every data object or of the attachment file metadata.
// /itemTypeFields does not list them.
var structural = map[string]bool{
	"key":          true,
	"version":      true,
	"itemType":     true,
	"creators":     true,
	"tags":         true,
	"collections":  true,
	"relations":    true,
	"dateAdded":    true,
	"dateModified": true,
	"deleted":      true,
	"parentItem":   true,
	"note":         true,
	"linkMode":     true,
	"contentType":  true,
	"charset":      true,
	"filename":     true,
	"md5":          true,
	"mtime":        true,
}

// DriftReport lists the differences between the local field table of an item type and the API.
type DriftReport struct {
	ItemType string
	// Missing are fields the API knows and the local table lacks.
	Missing []string
	// Unexpected are local fields the API does not list.
	Unexpected []string
}

func (r DriftReport) Clean() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

func (c *Client) Drift(itemType string) (DriftReport, error) {
	report := DriftReport{ItemType: itemType, Missing: []string{}, Unexpected: []string{}}
	policies, ok := zotero.Schema(itemType)
	if !ok {
		return report, errors.WithDetails(zotero.ErrUnknownItemType, "itemType", itemType)
	}
	fields, err := c.ItemTypeFields(itemType)
	if err != nil {
		return report, err
	}

	remote := map[string]bool{}
	for _, f := range fields {
		remote[f.Field] = true
	}
	local := map[string]bool{}
	for _, p := range policies {
		local[p.Wire] = true
		if !structural[p.Wire] && !remote[p.Wire] {
			report.Unexpected = append(report.Unexpected, p.Wire)
		}
	}
	for _, f := range fields {
		if !local[f.Field] {
			report.Missing = append(report.Missing, f.Field)
		}
	}
	sort.Strings(report.Missing)
	sort.Strings(report.Unexpected)
	return report, nil
}

// UnmodeledItemTypes returns the item types of the API without a local record. They decode
// into zotero.Unknown.
func (c *Client) UnmodeledItemTypes() ([]string, error) {
	types, err := c.ItemTypes()
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, t := range types {
		if _, ok := zotero.NewItemData(t.ItemType); !ok {
			result = append(result, t.ItemType)
		}
	}
	sort.Strings(result)
	return result, nil
}
