// Package hook runs optional Tengo scripts around the sideload pipeline.
package hook

// Type represents the kind of hook.
type Type string

// Supported hook types.
const (
	PreInstall  Type = "pre-install"
	PostInstall Type = "post-install"
	PreUnload   Type = "pre-unload"
	PostUnload  Type = "post-unload"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    Type
	Content string
}

// Context contains information passed to hook scripts.
type Context struct {
	PackageName    string
	PackageVersion string
	SlotPath       string
	Source         string
	Vars           map[string]interface{}
}

// Manager defines the interface for managing hooks.
type Manager interface {
	// Execute runs the specified hook type with the given context.
	Execute(hookType Type, ctx Context) error

	// AddHook adds a new hook.
	AddHook(hook Hook) error

	// HasHook checks if a hook of the specified type exists.
	HasHook(hookType Type) bool
}
