package extension

// ShouldExtensionDispatch identifies cases where a host binary operation
// should dispatch to the extension array's own method instead of the host's
// native path: whenever either operand is extension-backed.
func ShouldExtensionDispatch(left, right any) bool {
	if _, ok := left.(Array); ok {
		return true
	}
	if c, ok := left.(LabeledContainer); ok && c.ExtensionArray() != nil {
		return true
	}
	if _, ok := right.(Array); ok {
		return true
	}
	if c, ok := right.(LabeledContainer); ok && c.ExtensionArray() != nil {
		return true
	}
	return false
}
