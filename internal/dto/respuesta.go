package dto

// Estado is the response envelope status class.
type Estado string

const (
	// EstadoExito means the primary effect completed.
	EstadoExito Estado = "success"
	// EstadoAdvertencia covers empty-but-valid results and recoverable
	// business rejections (e.g. insufficient stock).
	EstadoAdvertencia Estado = "warning"
	// EstadoError covers rejected, invalid or failed requests. Error-class
	// messages are fixed strings that never leak internal detail.
	EstadoError Estado = "error"
)

// Respuesta is the uniform envelope every action returns.
type Respuesta struct {
	Status  Estado `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Exito builds a success envelope.
func Exito(data any, mensaje string) Respuesta {
	return Respuesta{Status: EstadoExito, Data: data, Message: mensaje}
}

// Advertencia builds a warning envelope.
func Advertencia(mensaje string) Respuesta {
	return Respuesta{Status: EstadoAdvertencia, Message: mensaje}
}

// Error builds an error envelope.
func Error(mensaje string) Respuesta {
	return Respuesta{Status: EstadoError, Message: mensaje}
}
