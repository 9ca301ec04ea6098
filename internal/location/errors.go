package location

import "errors"

// Виды ошибок позиционирования. Source сам не делает ретраев,
// политика повторов принадлежит планировщику синхронизации.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrTimeout             = errors.New("location request timed out")
	ErrUnavailable         = errors.New("positioning is unavailable")
	ErrNoLocationAvailable = errors.New("no location available")
)
