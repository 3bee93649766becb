package models

// Response is the envelope every handler returns, regardless of outcome.
// Code doubles as the HTTP status of the reply.
type Response struct {
	Code    int         `json:"code"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

func OK(message string, result interface{}) Response {
	return Response{Code: 200, Status: "Ok", Message: message, Result: result}
}

func BadRequest(message string) Response {
	return Response{Code: 400, Status: "Bad Request", Message: message}
}

func NotFound(message string) Response {
	return Response{Code: 404, Status: "Not found", Message: message}
}

func ServerError(message string) Response {
	return Response{Code: 500, Status: "Internal Server Error", Message: message}
}
