package errors

// Kind enumerates the failures domattr can report.
type Kind uint8

const (
	KindValueShape Kind = iota + 1
	KindServicesNotArray
	KindServiceNotObject
	KindServiceAttach
	KindConfig
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindValueShape:
		return "ValueShape"
	case KindServicesNotArray:
		return "ServicesNotArray"
	case KindServiceNotObject:
		return "ServiceNotObject"
	case KindServiceAttach:
		return "ServiceAttach"
	case KindConfig:
		return "Config"
	default:
		return "Unknown"
	}
}

// Code returns the stable code registered for the Kind, or "".
func (k Kind) Code() string {
	return registry[k].Code
}

// ErrorTemplate defines a registered error kind.
type ErrorTemplate struct {
	Code     string
	Category Category
	// Template is a fmt format; its verbs receive JSON-rendered values.
	Template string
	Detail   string
}

var registry = map[Kind]ErrorTemplate{
	// ============================================
	// Value Shape Errors (E200-E209)
	// ============================================

	KindValueShape: {
		Code:     "E200",
		Category: CategoryValueShape,
		Template: "Value '%s' can't be written into '%s' attribute.",
		Detail:   "class accepts strings, sequences and mappings; style accepts strings and mappings; other attributes accept scalars only.",
	},

	// ============================================
	// Service Validation Errors (E210-E219)
	// ============================================

	KindServicesNotArray: {
		Code:     "E210",
		Category: CategoryValidation,
		Template: "Expecting array of services, got '%s'.",
		Detail:   "The decl:services directive must hold a list of service objects.",
	},
	KindServiceNotObject: {
		Code:     "E211",
		Category: CategoryValidation,
		Template: "Expecting service object, got '%s'.",
		Detail:   "Every entry of decl:services must implement Attach(dom.Element) error.",
	},
	KindServiceAttach: {
		Code:     "E212",
		Category: CategoryValidation,
		Template: "Service attach failed for '%s'.",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	KindConfig: {
		Code:     "E120",
		Category: CategoryConfig,
		Template: "Invalid domattr.json",
		Detail:   "The domattr.json configuration file is malformed or holds out-of-range values.",
	},
}
