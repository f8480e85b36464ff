package clipboard

// SetNativeWriter replaces the native backend for tests.
func (a *Adapter) SetNativeWriter(fn func(string) error) {
	a.writeNative = fn
}
