package whatsapp

// messageResponse ответ Twilio Messages API при успешной отправке
type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// errorResponse ответ Twilio Messages API при ошибке
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
