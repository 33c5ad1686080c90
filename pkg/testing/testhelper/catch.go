package testhelper

// CatchMatcher is a gomock matcher that matches any argument and hands it to f,
// so that the test can inspect arguments like pointers after the call.
type CatchMatcher struct {
	f func(x any)
}

func Catch(f func(x any)) *CatchMatcher {
	return &CatchMatcher{
		f: f,
	}
}

// CatchString catches an optional string argument into dst,
// a nil *string leaves dst untouched.
func CatchString(dst *string) *CatchMatcher {
	return Catch(func(x any) {
		if s, ok := x.(*string); ok && s != nil {
			*dst = *s
		}
	})
}

func (m *CatchMatcher) Matches(x interface{}) bool {
	m.f(x)
	return true
}

func (m *CatchMatcher) String() string {
	return "CatchMatcher"
}
