package configs

// Configurable is implemented by scope values that can be set from config
// files. ConfigExpr names the value in diagnostics.
type Configurable interface {
	ConfigExpr() string
}
