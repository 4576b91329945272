package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"emperror.dev/errors"
	"github.com/je4/zotdata/pkg/filesystem"
	"github.com/je4/zotdata/pkg/zotapi"
	"github.com/je4/zotdata/pkg/zotero"
	"github.com/op/go-logging"
)

// Result is the outcome of round-tripping one fixture.
type Result struct {
	Name     string
	ItemType string
	Err      error
	// member paths that did not survive decode + encode
	Lost    []string
	Added   []string
	Changed []string
	// Canonical is the indented encoding of the decoded fixture.
	Canonical []byte
}

func (r Result) OK() bool {
	return r.Err == nil && len(r.Lost) == 0 && len(r.Added) == 0 && len(r.Changed) == 0
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Name, r.Err)
	}
	if r.OK() {
		return fmt.Sprintf("%s (%s): ok", r.Name, r.ItemType)
	}
	parts := []string{}
	if len(r.Lost) > 0 {
		parts = append(parts, "lost "+strings.Join(r.Lost, ", "))
	}
	if len(r.Added) > 0 {
		parts = append(parts, "added "+strings.Join(r.Added, ", "))
	}
	if len(r.Changed) > 0 {
		parts = append(parts, "changed "+strings.Join(r.Changed, ", "))
	}
	return fmt.Sprintf("%s (%s): %s", r.Name, r.ItemType, strings.Join(parts, "; "))
}

// Check decodes a fixture (an item envelope or a bare data object), encodes it again and
// compares both documents member by member.
func Check(name string, raw []byte) Result {
	result := Result{Name: name}
	var original map[string]any
	if err := json.Unmarshal(raw, &original); err != nil || original == nil {
		result.Err = errors.Errorf("%s is not a json object", name)
		return result
	}

	var encoded []byte
	var err error
	data, envelope := original["data"]
	if envelope && data == nil {
		delete(original, "data")
	}
	if envelope {
		var item *zotero.Item
		if item, err = zotero.DecodeItem(raw); err != nil {
			result.Err = err
			return result
		}
		result.ItemType = item.GetType()
		encoded, err = zotero.EncodeItem(item)
	} else {
		var d zotero.ItemData
		if d, err = zotero.DecodeData(raw); err != nil {
			result.Err = err
			return result
		}
		result.ItemType = d.GetItemType()
		encoded, err = zotero.EncodeData(d)
	}
	if err != nil {
		result.Err = errors.Wrap(err, "cannot encode")
		return result
	}

	var roundTripped map[string]any
	if err := json.Unmarshal(encoded, &roundTripped); err != nil {
		result.Err = errors.Wrap(err, "cannot read encoding back")
		return result
	}
	if !envelope {
		original, err = canonicalData(original)
	} else if members, ok := data.(map[string]any); ok {
		original["data"], err = canonicalData(members)
	}
	if err != nil {
		result.Err = errors.Wrap(err, "cannot canonicalize")
		return result
	}
	compare("", original, roundTripped, &result)
	sort.Strings(result.Lost)
	sort.Strings(result.Added)
	sort.Strings(result.Changed)

	indented := &bytes.Buffer{}
	if err := json.Indent(indented, encoded, "", "  "); err != nil {
		result.Err = errors.Wrap(err, "cannot indent")
		return result
	}
	result.Canonical = indented.Bytes()
	return result
}

// empty reports whether a member value is the empty value of its kind.
func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// canonicalData applies the normalizations the API tolerates. Empty omit-if-empty members
// are dropped and absent always-present members get their empty value. An empty relations
// list is an object, single relation objects are plain strings, manual tags carry no type
// and persons always carry both name parts.
func canonicalData(data map[string]any) (map[string]any, error) {
	itemType, _ := data["itemType"].(string)
	record, ok := zotero.NewItemData(itemType)
	if !ok {
		record = zotero.NewUnknown()
	}
	// members the encoder always writes
	defaults := map[string]any{}
	encoded, err := zotero.EncodeData(record)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot encode default %s", record.GetItemType())
	}
	if err := json.Unmarshal(encoded, &defaults); err != nil {
		return nil, errors.Wrapf(err, "cannot read default %s", record.GetItemType())
	}
	for _, f := range record.Fields() {
		v, present := data[f.Wire]
		if present && (v == nil || (f.Presence == zotero.OmitIfEmpty && empty(v))) {
			delete(data, f.Wire)
			present = false
		}
		if def, ok := defaults[f.Wire]; ok && !present && f.Presence != zotero.OmitIfEmpty {
			data[f.Wire] = def
		}
	}
	if deleted, ok := data["deleted"].(bool); ok && deleted {
		data["deleted"] = float64(1)
	}
	switch rel := data["relations"].(type) {
	case []any:
		if len(rel) == 0 {
			data["relations"] = map[string]any{}
		}
	case map[string]any:
		for predicate, uris := range rel {
			if list, ok := uris.([]any); ok && len(list) == 1 {
				rel[predicate] = list[0]
			}
		}
	}
	if tags, ok := data["tags"].([]any); ok {
		for _, t := range tags {
			if tag, ok := t.(map[string]any); ok && empty(tag["type"]) {
				delete(tag, "type")
			}
		}
	}
	if creators, ok := data["creators"].([]any); ok {
		for _, c := range creators {
			creator, ok := c.(map[string]any)
			if !ok {
				continue
			}
			if _, ok := creator["creatorType"]; !ok {
				creator["creatorType"] = zotero.DefaultCreatorType
			}
			_, first := creator["firstName"]
			_, last := creator["lastName"]
			if first && !last {
				creator["lastName"] = ""
			}
			if last && !first {
				creator["firstName"] = ""
			}
		}
	}
	return data, nil
}

func compare(path string, original, roundTripped map[string]any, result *Result) {
	for name, want := range original {
		memberPath := name
		if path != "" {
			memberPath = path + "." + name
		}
		got, ok := roundTripped[name]
		if !ok {
			result.Lost = append(result.Lost, memberPath)
			continue
		}
		wantObj, wantIsObj := want.(map[string]any)
		gotObj, gotIsObj := got.(map[string]any)
		if wantIsObj && gotIsObj && name == "data" && path == "" {
			compare(memberPath, wantObj, gotObj, result)
			continue
		}
		if !reflect.DeepEqual(want, got) {
			result.Changed = append(result.Changed, memberPath)
		}
	}
	for name := range roundTripped {
		if _, ok := original[name]; !ok {
			memberPath := name
			if path != "" {
				memberPath = path + "." + name
			}
			result.Added = append(result.Added, memberPath)
		}
	}
}

// checkStore round-trips every fixture of folder. With out set, the canonical encoding of
// every fixture that decoded is written to outFolder under the same name.
func checkStore(fs filesystem.FileSystem, folder string, out filesystem.FileSystem, outFolder string, logger *logging.Logger) ([]Result, error) {
	names, err := fs.FileList(folder, ".json")
	if err != nil {
		return nil, errors.Wrapf(err, "cannot list fixtures in %s%s/%s", fs.Protocol(), fs, folder)
	}
	logger.Infof("checking %v fixtures in %s%s/%s", len(names), fs.Protocol(), fs, folder)
	results := make([]Result, 0, len(names))
	for _, name := range names {
		raw, err := fs.FileGet(folder, name)
		if err != nil {
			return results, errors.Wrapf(err, "cannot read fixture %s", name)
		}
		result := Check(name, raw)
		results = append(results, result)
		if err := writeCanonical(out, outFolder, result, logger); err != nil {
			return results, err
		}
	}
	return results, nil
}

func writeCanonical(out filesystem.FileSystem, folder string, result Result, logger *logging.Logger) error {
	if out == nil || result.Canonical == nil {
		return nil
	}
	logger.Debugf("writing canonical %s", result.Name)
	if err := out.FilePut(folder, result.Name, result.Canonical, filesystem.FilePutOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "cannot write %s", result.Name)
	}
	return nil
}

// checkRemote compares the local field tables with the API and round-trips the configured
// items. Drift is logged but does not fail the check.
func checkRemote(client *zotapi.Client, remote Remote, out filesystem.FileSystem, outFolder string, logger *logging.Logger) ([]Result, error) {
	unmodeled, err := client.UnmodeledItemTypes()
	if err != nil {
		return nil, errors.Wrap(err, "cannot list remote item types")
	}
	if len(unmodeled) > 0 {
		logger.Infof("item types decoded as unknown: %s", strings.Join(unmodeled, ", "))
	}
	for _, itemType := range zotero.ItemTypes() {
		drift, err := client.Drift(itemType)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot check drift of %s", itemType)
		}
		if !drift.Clean() {
			logger.Warningf("%s: missing %v, unexpected %v", itemType, drift.Missing, drift.Unexpected)
		}
	}

	if remote.ApiKey != "" && len(remote.Items) > 0 {
		apiKey, err := client.CurrentKey()
		if err != nil {
			return nil, err
		}
		if !apiKey.CanRead(remote.Library) {
			logger.Warningf("key of %s has no read access to %s", apiKey.Username, remote.Library)
		}
	}

	results := make([]Result, 0, len(remote.Items))
	for _, key := range remote.Items {
		raw, err := client.Item(remote.Library, key)
		if err != nil {
			results = append(results, Result{Name: key, Err: err})
			continue
		}
		result := Check(key+".json", raw)
		results = append(results, result)
		if err := writeCanonical(out, outFolder, result, logger); err != nil {
			return results, err
		}
	}
	return results, nil
}
