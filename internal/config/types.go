package config

// AbstractType identifies a domain concept that interface definitions
// express generically, independent of any target language. The consuming
// generator only understands a fixed set of them.
type AbstractType string

const (
	TypeUuid      AbstractType = "Uuid"
	TypeUrl       AbstractType = "Url"
	TypeTimestamp AbstractType = "Timestamp"
)

// AbstractTypes lists every known abstract type in canonical order. The
// order is used wherever descriptors are rendered, to keep output
// deterministic.
var AbstractTypes = []AbstractType{TypeUuid, TypeUrl, TypeTimestamp}

// Known reports whether the abstract type is part of the enumerated set
// understood by the consuming generator.
func (t AbstractType) Known() bool {
	for _, known := range AbstractTypes {
		if t == known {
			return true
		}
	}
	return false
}
