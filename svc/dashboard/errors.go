package dashboard

import "errors"

var ErrBackend = errors.New("dashboard: backend failure")
