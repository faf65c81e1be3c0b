package ldtk

type selectionKind int

// selectByIndex is the zero kind so that the zero-value LevelSelection
// picks the level at flat index 0.
const (
	selectByIndex selectionKind = iota
	selectByIdentifier
	selectByIid
	selectByUid
	selectByFunc
)

// LevelSelection is a policy for picking one level out of a project:
// by identifier, iid, flat index, uid, or an arbitrary predicate evaluated
// in iteration order. The zero value selects the first level (index 0).
type LevelSelection struct {
	kind       selectionKind
	identifier string
	iid        string
	index      int
	uid        int
	fn         func(index int, level *Level) bool
}

// SelectIdentifier selects the level with the given identifier.
func SelectIdentifier(identifier string) LevelSelection {
	return LevelSelection{kind: selectByIdentifier, identifier: identifier}
}

// SelectIid selects the level with the given iid.
func SelectIid(iid string) LevelSelection {
	return LevelSelection{kind: selectByIid, iid: iid}
}

// SelectIndex selects the level at the given flat position in the
// project's insertion-ordered index.
func SelectIndex(index int) LevelSelection {
	return LevelSelection{kind: selectByIndex, index: index}
}

// SelectUid selects the level with the given uid.
func SelectUid(uid int) LevelSelection {
	return LevelSelection{kind: selectByUid, uid: uid}
}

// SelectFunc selects the first level, in iteration order, for which fn
// reports true.
func SelectFunc(fn func(index int, level *Level) bool) LevelSelection {
	return LevelSelection{kind: selectByFunc, fn: fn}
}

// Matches reports whether the level at the given iteration index satisfies
// the selection.
func (s LevelSelection) Matches(index int, level *Level) bool {
	switch s.kind {
	case selectByIdentifier:
		return level.Identifier == s.identifier
	case selectByIid:
		return level.Iid == s.iid
	case selectByIndex:
		return index == s.index
	case selectByUid:
		return level.Uid == s.uid
	case selectByFunc:
		return s.fn != nil && s.fn(index, level)
	}
	return false
}
