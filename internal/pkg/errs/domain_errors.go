package errs

// Categories shared by every usecase. Domain errors carry one of these as a mark
// so the transport layer can pick a status without knowing each sentinel.
var (
	ErrNotFound         = New("not found")
	ErrPermissionDenied = New("permission denied")
	ErrConflict         = New("conflict")
	ErrValidation       = New("validation failed")
)

// Operation errors
var (
	ErrDatabaseOperationFailed = New("database operation failed")
)
