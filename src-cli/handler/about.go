// This package contains the non-event commands of the interactive loop.
//
// There should be 2 functions per handler, one for adding the handler &
// its info to the AppState maps (public), and one returning the handler
// closure (private).
//
// Only return errors when it's the backend's fault, nil if user's fault.
package handler
