package constants

const (
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_CREDENTIALS        = "Wrong username or password"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read parsed input from context"
	NOT_FOUND_RECORDS          = "Records not found"

	DUPLICATE_USERNAME      = "Username already exists"
	CAN_NOT_DELETE_ROOT     = "The bootstrap admin cannot be deleted"
	EMPTY_NAME              = "Name must not be empty"
	EMPTY_LABEL             = "Label must not be empty"
	DUPLICATE_RESOURCE_NAME = "Resource name already exists"
	DUPLICATE_DAY_NAME      = "Day name already exists"
	DUPLICATE_HOUR_VALUE    = "Hour value already exists"

	INVALID_BOOKING_INPUT = "User name and info id must not be empty"
	SLOT_ALREADY_BOOKED   = "Slot is already booked"
)

// Bootstrap admin account, protected from deletion.
const (
	ROOT_ADMIN_USERNAME = "admin"
	ROOT_ADMIN_PASSWORD = "123"
)

const DEFAULT_BOOKING_TYPE = "student"

// Cell marker and placeholder used by the excel export.
const (
	EXPORT_CELL_MARKER      = "📌"
	EXPORT_EMPTY_CELL       = "---"
	EXPORT_HOUR_COLUMN_NAME = "Hour"
)
