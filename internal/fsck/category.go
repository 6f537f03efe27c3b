package fsck

import "strings"

// Category classifies a finding.
type Category uint8

const (
	Invalid Category = iota
	Reserved
	Duplicate
	Allocated
	Unallocated

	numCategories
)

// Subject is the kind of element a free-list conflict is about.
type Subject uint8

const (
	BlockSubject Subject = iota
	InodeSubject

	numSubjects
)

// categoryFlags are the short flags each category is spelled with in the
// reporting vocabulary. Display text is expanded from these.
var categoryFlags = [numCategories]string{
	Invalid:     "inv",
	Reserved:    "res",
	Duplicate:   "dup",
	Allocated:   "all",
	Unallocated: "unall",
}

var levelSuffixes = [Triple + 1]string{
	Direct: "",
	Single: "_ind",
	Double: "_doub_ind",
	Triple: "_trip_ind",
}

var subjectSuffixes = [numSubjects]string{
	BlockSubject: "_blk",
	InodeSubject: "_ino",
}

// flagTokens is applied in order, each replacing only its first occurrence.
// "tripple" is the historical spelling and existing consumers match on it.
var flagTokens = [...][2]string{
	{"inv", "invalid"},
	{"res", "reserved"},
	{"ind", "indirect"},
	{"doub", "double"},
	{"trip", "tripple"},
	{"blk", "block"},
	{"ino", "inode"},
	{"all", "allocated"},
	{"dup", "duplicate"},
}

// ExpandFlag turns a short flag such as "dup_doub_ind" into its display
// text ("DUPLICATE DOUBLE INDIRECT").
func ExpandFlag(flag string) string {
	s := strings.ReplaceAll(flag, "_", " ")
	for _, tok := range flagTokens {
		s = strings.Replace(s, tok[0], tok[1], 1)
	}
	return strings.ToUpper(s)
}

var (
	blockLabels    [numCategories][Triple + 1]string
	subjectLabels  [numCategories][numSubjects]string
	categoryLabels [numCategories]string
)

func init() {
	for c := Category(0); c < numCategories; c++ {
		flag := categoryFlags[c]
		categoryLabels[c] = ExpandFlag(flag)
		for l := Direct; l <= Triple; l++ {
			blockLabels[c][l] = ExpandFlag(flag + levelSuffixes[l])
		}
		for s := Subject(0); s < numSubjects; s++ {
			subjectLabels[c][s] = ExpandFlag(flag + subjectSuffixes[s])
		}
	}
}

// Label is the display text of c on its own, e.g. "UNALLOCATED".
func (c Category) Label() string {
	if c >= numCategories {
		return ""
	}
	return categoryLabels[c]
}

// BlockLabel is the display text of c qualified by an indirection level,
// e.g. "RESERVED DOUBLE INDIRECT".
func (c Category) BlockLabel(l Level) string {
	if c >= numCategories || !l.Valid() {
		return ""
	}
	return blockLabels[c][l]
}

// SubjectLabel is the display text of c qualified by a subject, e.g.
// "ALLOCATED BLOCK".
func (c Category) SubjectLabel(s Subject) string {
	if c >= numCategories || s >= numSubjects {
		return ""
	}
	return subjectLabels[c][s]
}

func (c Category) String() string {
	if c >= numCategories {
		return "unknown"
	}
	return categoryFlags[c]
}
