package zotero

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultCreatorType is used when a creator arrives without a role.
const DefaultCreatorType = "author"

// NameKind tells which name members a creator carries.
type NameKind uint8

const (
	// NameUnnamed creators have neither name form (minimal fixtures).
	NameUnnamed NameKind = iota
	// NameTwoField creators are persons with firstName/lastName.
	NameTwoField
	// NameSingleField creators carry one name, typically an organization.
	NameSingleField
)

// Creator is one contributor of an item. Only the name members selected by Kind are encoded.
type Creator struct {
	CreatorType string
	Kind        NameKind
	FirstName   string
	LastName    string
	Name        string
}

func NewPerson(creatorType, firstName, lastName string) Creator {
	return Creator{CreatorType: creatorType, Kind: NameTwoField, FirstName: firstName, LastName: lastName}
}

func NewOrganization(creatorType, name string) Creator {
	return Creator{CreatorType: creatorType, Kind: NameSingleField, Name: name}
}

func (c *Creator) bind() []field {
	fs := []field{
		{FieldPolicy{Name: "CreatorType", Wire: "creatorType", Presence: DefaultIfAbsent, Default: DefaultCreatorType}, stringValue{&c.CreatorType}},
	}
	switch c.Kind {
	case NameTwoField:
		fs = append(fs,
			field{FieldPolicy{Name: "FirstName", Wire: "firstName", Presence: AlwaysPresent}, stringValue{&c.FirstName}},
			field{FieldPolicy{Name: "LastName", Wire: "lastName", Presence: AlwaysPresent}, stringValue{&c.LastName}},
		)
	case NameSingleField:
		fs = append(fs,
			field{FieldPolicy{Name: "Name", Wire: "name", Presence: AlwaysPresent}, stringValue{&c.Name}},
		)
	}
	return fs
}

func (c *Creator) decode(path string, raw json.RawMessage) error {
	members, err := parseObject(path, raw)
	if err != nil {
		return err
	}
	present := func(name string) bool {
		m, ok := members[name]
		return ok && !isNull(m)
	}
	twoField := present("firstName") || present("lastName")
	singleField := present("name")
	*c = Creator{}
	switch {
	case twoField && singleField:
		return &SchemaMismatchError{
			Path:     path,
			Expected: "either firstName/lastName or name",
			Got:      "both",
		}
	case twoField:
		c.Kind = NameTwoField
	case singleField:
		c.Kind = NameSingleField
	}
	return decodeMembers(path, members, c.bind())
}

func (c *Creator) UnmarshalJSON(data []byte) error {
	return c.decode("", data)
}

func (c Creator) MarshalJSON() ([]byte, error) {
	return encodeObject(c.bind(), nil)
}

// String renders "Last, First" for persons and the name for organizations.
func (c Creator) String() string {
	switch c.Kind {
	case NameTwoField:
		return strings.Trim(fmt.Sprintf("%s, %s", c.LastName, c.FirstName), " ,")
	case NameSingleField:
		return c.Name
	}
	return ""
}
