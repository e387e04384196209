package libdiff

// A diff is a single-field Object whose key names the operation.
const (
	DeleteOp     = "!delete"
	InsertOp     = "!insert"
	ReplaceOp    = "!replace"
	KeepOp       = "!keep"
	StringDiffOp = "!strdiff"
	ArrayDiffOp  = "!arraydiff"
	ObjectDiffOp = "!objdiff"
)
