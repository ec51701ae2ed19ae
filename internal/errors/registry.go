package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Kind     error
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Construction Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryConstruction,
		Kind:     ErrConstruction,
		Message:  "Leaf tag cannot have child elements",
		Detail:   "Leaf tags such as br, img and input render as <tag /> and accept attributes only.",
	},
	"E002": {
		Category: CategoryConstruction,
		Kind:     ErrConstruction,
		Message:  "Child element passed as attribute",
		Detail:   "Tag constructors take attributes; children are supplied afterwards with With.",
	},
	"E003": {
		Category: CategoryConstruction,
		Kind:     ErrConstruction,
		Message:  "Single-child tag given several children",
		Detail:   "Tags such as title and textarea hold exactly one child value.",
	},
	"E004": {
		Category: CategoryConstruction,
		Kind:     ErrConstruction,
		Message:  "Unsupported child value",
		Detail:   "Children must be a string, a []byte, an element, or a func returning one of these.",
	},
	"E005": {
		Category: CategoryConstruction,
		Kind:     ErrConstruction,
		Message:  "Unsupported attribute value",
		Detail:   "Attributes must be a string (boolean attribute), a Prop, []Prop or map[string]string.",
	},

	// ============================================
	// Render Errors (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryRender,
		Kind:     ErrUnsupportedValue,
		Message:  "Unsupported value",
		Detail:   "Render accepts strings, []byte, elements and funcs returning them.",
	},

	// ============================================
	// Template Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryTemplate,
		Kind:     ErrMissingBinding,
		Message:  "Missing binding",
		Detail:   "The template references a placeholder that the binding function did not supply.",
	},
	"E021": {
		Category: CategoryTemplate,
		Kind:     ErrConflictingName,
		Message:  "Conflicting binding name",
		Detail:   "The binding collides with a name reserved by the compiled template.",
	},
	"E022": {
		Category: CategoryTemplate,
		Kind:     ErrTemplateSyntax,
		Message:  "Malformed template",
		Detail:   "Literal braces must be written as {{ and }}; placeholders as {name}.",
	},

	// ============================================
	// Config Errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryConfig,
		Kind:     ErrConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E031": {
		Category: CategoryConfig,
		Kind:     ErrConfig,
		Message:  "Configuration not found",
		Detail:   "No htmldoom.json was found.",
	},
	"E032": {
		Category: CategoryConfig,
		Kind:     ErrConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// Loader Errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryLoader,
		Kind:     ErrLoader,
		Message:  "Invalid file name",
		Detail:   "Value files must be named <name>.<extension> with exactly one dot.",
	},
	"E041": {
		Category: CategoryLoader,
		Kind:     ErrLoader,
		Message:  "No renderer for file type",
		Detail:   "The file extension has no registered renderer.",
	},
	"E042": {
		Category: CategoryLoader,
		Kind:     ErrLoader,
		Message:  "Duplicate value name",
		Detail:   "Two files in the same directory share a name.",
	},
	"E043": {
		Category: CategoryLoader,
		Kind:     ErrLoader,
		Message:  "Invalid component format",
		Detail:   "Components are written as tag: [{attrs}], tag: [[children]] or tag: [{attrs}, [children]].",
	},
	"E044": {
		Category: CategoryLoader,
		Kind:     ErrLoader,
		Message:  "Directive not found",
		Detail:   "The dotted directive does not name a node in the document.",
	},
	"E045": {
		Category: CategoryLoader,
		Kind:     ErrLoader,
		Message:  "Read failed",
		Detail:   "The file could not be read.",
	},

	// ============================================
	// Publish Errors (E050-E059)
	// ============================================

	"E050": {
		Category: CategoryPublish,
		Kind:     ErrPublish,
		Message:  "Upload failed",
		Detail:   "The object store rejected the upload.",
	},
	"E051": {
		Category: CategoryPublish,
		Kind:     ErrPublish,
		Message:  "Publish target not configured",
		Detail:   "A bucket name is required to publish.",
	},

	// ============================================
	// CLI Errors (E060-E069)
	// ============================================

	"E060": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The preview server stopped with an error.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
