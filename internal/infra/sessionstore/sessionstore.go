// Package sessionstore persists the per-user checkout session. One user has
// at most one live session; writes replace the whole object.
package sessionstore

import "shopbot-checkout/internal/pkg/errs"

var ErrNotFound = errs.New("checkout session not found")
