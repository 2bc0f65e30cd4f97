package model

// ReferencePolicy decides how rows referring to other rows are treated on
// insert and delete.
type ReferencePolicy string

const (
	// ReferencePolicyIgnore performs no existence checks and no cascades.
	ReferencePolicyIgnore ReferencePolicy = "ignore"
	// ReferencePolicyReject refuses inserts pointing at missing rows and
	// deletes of rows that are still referenced.
	ReferencePolicyReject ReferencePolicy = "reject"
	// ReferencePolicyCascade deletes dependent rows together with their parent.
	ReferencePolicyCascade ReferencePolicy = "cascade"
)

// ParseReferencePolicy maps a config value to a policy, defaulting to ignore.
func ParseReferencePolicy(s string) ReferencePolicy {
	switch ReferencePolicy(s) {
	case ReferencePolicyReject, ReferencePolicyCascade:
		return ReferencePolicy(s)
	default:
		return ReferencePolicyIgnore
	}
}
