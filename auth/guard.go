package auth

// GuardDecision is what to do with a protected view given the current
// session status.
type GuardDecision int

const (
	// GuardWait blocks rendering until the initial session resolve finishes.
	// Protected content must never flash while the session is still loading.
	GuardWait GuardDecision = iota

	// GuardProceed renders the protected view.
	GuardProceed

	// GuardSignIn redirects to the sign-in flow instead of rendering.
	GuardSignIn
)

// Resolve is the route guard: a pure decision with no side effects. The
// redirect itself is the caller's job.
func Resolve(status SessionStatus) GuardDecision {
	switch status {
	case SessionAuthenticated:
		return GuardProceed
	case SessionAnonymous:
		return GuardSignIn
	default:
		return GuardWait
	}
}
