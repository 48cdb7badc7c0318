package dto

// ResultResponse is the uniform action result: a success flag and, on
// failure, a human-readable message. Handlers never leak raw backend
// errors past this shape.
type ResultResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func OK() ResultResponse                { return ResultResponse{Success: true} }
func OKWithID(id string) ResultResponse { return ResultResponse{Success: true, ID: id} }
func Fail(msg string) ResultResponse    { return ResultResponse{Success: false, Error: msg} }
