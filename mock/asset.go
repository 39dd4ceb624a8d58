package mock

import "github.com/fwojciec/gamecat"

var _ gamecat.AssetResolver = (*AssetResolver)(nil)

// AssetResolver is a mock implementation of gamecat.AssetResolver.
type AssetResolver struct {
	InitializeFn func() error
	ResolveFn    func(name string) string
	ClearFn      func()
}

func (r *AssetResolver) Initialize() error {
	return r.InitializeFn()
}

func (r *AssetResolver) Resolve(name string) string {
	return r.ResolveFn(name)
}

func (r *AssetResolver) Clear() {
	r.ClearFn()
}

var _ gamecat.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of gamecat.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string, policy gamecat.SanitizePolicy) string
}

func (s *Sanitizer) Sanitize(html string, policy gamecat.SanitizePolicy) string {
	return s.SanitizeFn(html, policy)
}
