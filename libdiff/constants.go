package libdiff

type Op string

const (
	Delete  Op = "delete"
	Insert  Op = "insert"
	Replace Op = "replace"
)
