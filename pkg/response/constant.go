package response

const (
	MessageSuccess = "Success"

	BadRequestErrorCode     = 1
	InternalServerErrorCode = 500

	DefaultErrorMessage = "Something went wrong"
)
