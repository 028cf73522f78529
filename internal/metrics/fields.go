package metrics

// Metric attribute keys shared by the HTTP and provider instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOp       = "op"
	AttrKind     = "kind"
)
