package zotero

// sharedSetters gives every per-type builder the setters of the shared members.
// B is the concrete builder type so that chains keep their type.
type sharedSetters[B any] struct {
	builder *B
	base    *ItemDataBase
}

func (s sharedSetters[B]) Key(key string) *B {
	s.base.Key = key
	return s.builder
}

func (s sharedSetters[B]) Version(version int64) *B {
	s.base.Version = version
	return s.builder
}

// Tags replaces the tag list.
func (s sharedSetters[B]) Tags(tags ...Tag) *B {
	s.base.SetTags(append([]Tag{}, tags...))
	return s.builder
}

func (s sharedSetters[B]) AddTag(tag Tag) *B {
	s.base.Tags = append(s.base.Tags, tag)
	return s.builder
}

// Collections replaces the collection keys.
func (s sharedSetters[B]) Collections(keys ...string) *B {
	s.base.SetCollections(append([]string{}, keys...))
	return s.builder
}

func (s sharedSetters[B]) Relations(relations Relations) *B {
	s.base.SetRelations(relations.Clone())
	return s.builder
}

// Relate adds one object URI to predicate.
func (s sharedSetters[B]) Relate(predicate, uri string) *B {
	if s.base.Relations == nil {
		s.base.Relations = Relations{}
	}
	s.base.Relations.Add(predicate, uri)
	return s.builder
}

func (s sharedSetters[B]) DateAdded(date string) *B {
	s.base.DateAdded = date
	return s.builder
}

func (s sharedSetters[B]) DateModified(date string) *B {
	s.base.DateModified = date
	return s.builder
}

func (s sharedSetters[B]) Deleted(deleted bool) *B {
	s.base.Deleted = deleted
	return s.builder
}

// creatorSetters is embedded by the builders of regular item types.
type creatorSetters[B any] struct {
	builder *B
	list    *Contributors
}

// Creators replaces the creator list.
func (s creatorSetters[B]) Creators(creators ...Creator) *B {
	s.list.SetCreators(append([]Creator{}, creators...))
	return s.builder
}

func (s creatorSetters[B]) AddCreator(creator Creator) *B {
	s.list.Creators = append(s.list.Creators, creator)
	return s.builder
}

// parentSetters is embedded by the builders of child item types.
type parentSetters[B any] struct {
	builder *B
	ref     *ParentRef
}

func (s parentSetters[B]) ParentItem(key string) *B {
	s.ref.ParentItem = key
	return s.builder
}
