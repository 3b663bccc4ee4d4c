//go:build !windows

package layout

type unsupportedProvider struct{}

func newProvider() Provider {
	return unsupportedProvider{}
}

func (unsupportedProvider) Current() (ID, error) {
	return "", ErrUnsupported
}
