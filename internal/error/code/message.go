package code

// code to message
var codeMessageMap = map[int]string{
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request",
	ErrValidation:      "validation failed",
	ErrUnauthenticated: "please log in",
	ErrTooManyRequests: "too many requests, please slow down",
	ErrNotFound:        "page not found",

	ErrUserNotFound:       "user not found",
	ErrUserAlreadyExist:   "Email already registered",
	ErrInvalidCredentials: "Incorrect email or password",

	ErrDatabase:         "database error",
	ErrRecordNotFound:   "record not found",
	ErrConnectionFailed: "connection failed",

	ErrCityNotFound:     "city not found",
	ErrCityAlreadyExist: "city already exists",
	ErrCityNameInvalid:  "city name must be between 3 and 20 characters",

	ErrAreaNotFound:    "area not found",
	ErrAreaNameInvalid: "area name must be between 3 and 20 characters",
}

// code to HTTP status
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrUnauthenticated: StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrNotFound:        StatusNotFound,

	ErrUserNotFound:       StatusNotFound,
	ErrUserAlreadyExist:   StatusConflict,
	ErrInvalidCredentials: StatusUnauthorized,

	ErrDatabase:         StatusInternalServerError,
	ErrRecordNotFound:   StatusNotFound,
	ErrConnectionFailed: StatusServiceUnavailable,

	ErrCityNotFound:     StatusNotFound,
	ErrCityAlreadyExist: StatusConflict,
	ErrCityNameInvalid:  StatusBadRequest,

	ErrAreaNotFound:    StatusNotFound,
	ErrAreaNameInvalid: StatusBadRequest,
}

// GetMessage returns the message for a code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for a code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
