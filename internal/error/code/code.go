package code

// HTTP status codes.
const (
	// StatusOK - 200: OK.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not logged in.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: resource already exists.
	StatusConflict = 409
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal error.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: dependency unavailable.
	StatusServiceUnavailable = 503
)

// General codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding failed.
	ErrBind
	// ErrValidation - 400: form validation failed.
	ErrValidation
	// ErrUnauthenticated - 401: login required.
	ErrUnauthenticated
	// ErrTooManyRequests - 429: rate limited.
	ErrTooManyRequests
	// ErrNotFound - 404: page not found.
	ErrNotFound
)

// User codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: email already registered.
	ErrUserAlreadyExist
	// ErrInvalidCredentials - 401: incorrect email or password.
	ErrInvalidCredentials
)

// Database codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
	// ErrConnectionFailed - 503: connection failed.
	ErrConnectionFailed
)

// City codes (106xxx).
const (
	// ErrCityNotFound - 404: city not found.
	ErrCityNotFound int = iota + 106000
	// ErrCityAlreadyExist - 409: city name taken.
	ErrCityAlreadyExist
	// ErrCityNameInvalid - 400: city name out of bounds.
	ErrCityNameInvalid
)

// Area codes (107xxx).
const (
	// ErrAreaNotFound - 404: area not found.
	ErrAreaNotFound int = iota + 107000
	// ErrAreaNameInvalid - 400: area name out of bounds.
	ErrAreaNameInvalid
)
