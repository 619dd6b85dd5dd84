package usecase

import "regexp"

// User-facing validation messages. These are part of the API contract and
// must not be reworded.
const (
	wrongCredentialsMessage = "Credenciales incorrectas"

	passwordRequiredMessage   = "Se requiere la contraseña"
	passwordMinLengthMessage  = "La contraseña debe de tener al menos 12 caracteres"
	passwordLowercaseMessage  = "La contraseña debe de contener al menos una letra minúscula"
	passwordUppercaseMessage  = "La contraseña debe de contener al menos una letra mayúscula"
	passwordNumberMessage     = "La contraseña debe de contener al menos un número"
	passwordSpecialMessage    = "La contraseña debe de contener al menos un caracter especial"

	fullNameRequiredMessage = "Se requiere el nombre completo"
	nameMaxLengthMessage    = "El nombre debe de contener menos de 255 caracteres"

	emailRequiredMessage = "Se requiere el email"
	emailFormatMessage   = "Formato de email inválido"
	emailTakenMessage    = "Email no permitido"
	invalidDomainMessage = "Dominio inválido"

	userNotRegisteredMessage = "Usuario no registrado"
	updateForbiddenMessage   = "No puede modificarse la información de este usuario"
	deleteForbiddenMessage   = "No puede eliminarse este usuario"
	emptyUpdateMessage       = "Debería de haber al menos un dato a actualizar"
)

const (
	passwordMinLength = 12
	nameMaxLength     = 255
)

var (
	lowercasePattern   = regexp.MustCompile(`[a-z]`)
	uppercasePattern   = regexp.MustCompile(`[A-Z]`)
	numberPattern      = regexp.MustCompile(`[0-9]`)
	specialCharPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)
